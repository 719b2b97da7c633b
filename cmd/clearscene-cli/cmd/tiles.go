package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clearscene/internal/domain"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "List tiles and years present in the catalog",
	Long: `List the tile directories under the catalog root, with the years
each one covers and the clear/cloudy file split.

Example:
  clearscene-cli tiles --root ~/landsat/quicklooks`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := GetRepo()

		tiles, err := repo.ListTiles()
		if err != nil {
			return err
		}
		for _, tile := range tiles {
			years, err := repo.ListYears(tile)
			if err != nil {
				return err
			}
			for _, year := range years {
				scenes, err := repo.ListScenes(tile, year)
				if err != nil {
					return err
				}
				clear, cloudy := 0, 0
				for _, s := range scenes {
					if s.Classification == domain.Cloudy {
						cloudy++
					} else {
						clear++
					}
				}
				fmt.Printf("%s %d: %d clear, %d cloudy\n", tile, year, clear, cloudy)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tilesCmd)
}
