package domain

import "testing"

func TestParseTile(t *testing.T) {
	tests := []struct {
		input   string
		want    Tile
		wantErr bool
	}{
		{input: "p043r030", want: Tile{Path: 43, Row: 30}},
		{input: "p43r30", want: Tile{Path: 43, Row: 30}}, // unpadded
		{input: "p233r248", want: Tile{Path: 233, Row: 248}},
		{input: "p1r1", want: Tile{Path: 1, Row: 1}},
		{input: "p234r001", wantErr: true}, // path past the grid
		{input: "p000r030", wantErr: true},
		{input: "043030", wantErr: true},
		{input: "p043", wantErr: true},
		{input: "cloudy", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		tile, err := ParseTile(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTile(%q) accepted, got %v", tt.input, tile)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTile(%q) failed: %v", tt.input, err)
			continue
		}
		if tile != tt.want {
			t.Errorf("ParseTile(%q) = %v, want %v", tt.input, tile, tt.want)
		}
	}
}

func TestTile_String_ZeroPads(t *testing.T) {
	tile := Tile{Path: 43, Row: 30}
	if got := tile.String(); got != "p043r030" {
		t.Errorf("String() = %q, want p043r030", got)
	}
}

func TestParseTileList(t *testing.T) {
	tiles, err := ParseTileList([]string{"p043r033,p043r032", "p43r32"})
	if err != nil {
		t.Fatalf("ParseTileList failed: %v", err)
	}
	// Deduplicated (p43r32 == p043r032) and sorted by path then row.
	if len(tiles) != 2 {
		t.Fatalf("got %d tiles, want 2: %v", len(tiles), tiles)
	}
	if tiles[0].String() != "p043r032" || tiles[1].String() != "p043r033" {
		t.Errorf("unexpected order: %v", tiles)
	}

	if _, err := ParseTileList([]string{"bogus"}); err == nil {
		t.Error("ParseTileList accepted bogus tile")
	}
}
