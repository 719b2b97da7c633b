package domain

import "testing"

func TestParseYearSet(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		in      []int
		out     []int
		wantErr bool
	}{
		{
			name: "no filter matches everything",
			args: nil,
			in:   []int{1984, 2000, 2099},
		},
		{
			name: "single years",
			args: []string{"1984", "2000"},
			in:   []int{1984, 2000},
			out:  []int{1985, 1999},
		},
		{
			name: "range",
			args: []string{"2000-2003"},
			in:   []int{2000, 2001, 2002, 2003},
			out:  []int{1999, 2004},
		},
		{
			name: "comma separated mix",
			args: []string{"1984,2000-2001"},
			in:   []int{1984, 2000, 2001},
			out:  []int{1985, 1999},
		},
		{
			name: "reversed range bounds",
			args: []string{"2003-2000"},
			in:   []int{2000, 2003},
		},
		{
			name:    "garbage token",
			args:    []string{"ninteen-eighty-four"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ys, err := ParseYearSet(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseYearSet failed: %v", err)
			}
			for _, y := range tt.in {
				if !ys.Contains(y) {
					t.Errorf("Contains(%d) = false, want true", y)
				}
			}
			for _, y := range tt.out {
				if ys.Contains(y) {
					t.Errorf("Contains(%d) = true, want false", y)
				}
			}
		})
	}
}
