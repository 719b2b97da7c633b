package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clearscene/internal/adapters/manifest"
	"clearscene/internal/application/commands"
	"clearscene/internal/config"
	"clearscene/internal/domain"
)

var (
	countOutput   string
	countIDType   string
	countTiles    []string
	countYears    []string
	countSkipList string
	countManifest string
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count clear scenes and write the output lists",
	Long: `Walk the catalog, count clear scenes per tile/year/month, and write
clear_scene_counts.txt, clear_scenes.txt and cloudy_scenes.txt into the
output folder. All three files are fully regenerated on every run.

Examples:
  clearscene-cli count --root ~/landsat/quicklooks --output ./lists
  clearscene-cli count --wrs2 p043r032,p043r033 --years "1984 2000-2015"
  clearscene-cli count --id-type product --manifest ./metadata_csv
  clearscene-cli count --skip-list ./skip_list.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		encoding, err := domain.ParseIDEncoding(countIDType)
		if err != nil {
			return err
		}

		countCmd := commands.NewCountScenesCommand(GetRepo(), encoding)

		if len(countTiles) > 0 {
			tiles, err := domain.ParseTileList(countTiles)
			if err != nil {
				return err
			}
			countCmd.Tiles = tiles
		}
		if len(countYears) > 0 {
			years, err := domain.ParseYearSet(countYears)
			if err != nil {
				return err
			}
			countCmd.Years = years
		}

		var warnings []string
		if countSkipList != "" {
			skip, skipWarnings, err := commands.LoadSkipList(countSkipList)
			if err != nil {
				return err
			}
			countCmd.SkipList = skip
			warnings = append(warnings, skipWarnings...)
		}
		if countManifest != "" {
			resolver, err := manifest.Load(countManifest)
			if err != nil {
				return err
			}
			countCmd.WithResolver(resolver)
		}

		result, err := countCmd.Execute(ctx)
		if err != nil {
			return err
		}
		if err := commands.WriteOutputs(countOutput, result); err != nil {
			return err
		}

		for _, row := range result.Counts.Rows() {
			fmt.Printf("%s %d: %d clear\n", row.Tile, row.Year, row.Counts.Total())
		}
		fmt.Printf("wrote %d clear and %d cloudy identifiers to %s\n",
			len(result.Clear), len(result.Cloudy), countOutput)

		warnings = append(warnings, result.Warnings...)
		if len(warnings) > 0 {
			fmt.Fprintf(os.Stderr, "\n%d warning(s):\n", len(warnings))
			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "  %s\n", w)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().StringVarP(&countOutput, "output", "o", config.OutputPath(), "output folder for the generated lists")
	countCmd.Flags().StringVar(&countIDType, "id-type", "product", "identifier encoding in output lists (product|short)")
	countCmd.Flags().StringSliceVar(&countTiles, "wrs2", nil, "WRS2 tiles to include (e.g. p043r032,p043r033)")
	countCmd.Flags().StringSliceVar(&countYears, "years", nil, `years or ranges to include (e.g. "1984,2000-2015")`)
	countCmd.Flags().StringVar(&countSkipList, "skip-list", "", "file of identifiers forced into the cloudy list")
	countCmd.Flags().StringVar(&countManifest, "manifest", "", "metadata CSV folder for product-ID resolution")
}
