package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"clearscene/internal/adapters/manifest"
	"clearscene/internal/application/commands"
	"clearscene/internal/domain"
)

var (
	normalizeIDType   string
	normalizeManifest string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <identifier>",
	Short: "Normalize a scene identifier and re-encode it",
	Long: `Parse a scene identifier in any supported encoding (full product ID,
short collection ID, or legacy pre-collection scene ID) and print its
canonical identity plus the requested encoding.

Examples:
  clearscene-cli normalize LT50430302000288EDC00
  clearscene-cli normalize --id-type short LT05_L1TP_043030_20001014_20160922_01_T1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		encoding, err := domain.ParseIDEncoding(normalizeIDType)
		if err != nil {
			return err
		}

		normCmd := commands.NewNormalizeCommand(args[0], encoding)
		if normalizeManifest != "" {
			resolver, err := manifest.Load(normalizeManifest)
			if err != nil {
				return err
			}
			normCmd.WithResolver(resolver)
		}

		result, err := normCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("sensor: %s\n", result.Sensor)
		fmt.Printf("tile:   %s\n", result.Tile)
		fmt.Printf("date:   %s\n", result.Date)
		fmt.Printf("id:     %s\n", result.Encoded)
		if !result.Honored {
			fmt.Println("note:   product fields unknown, printed short form")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().StringVar(&normalizeIDType, "id-type", "short", "output encoding (product|short)")
	normalizeCmd.Flags().StringVar(&normalizeManifest, "manifest", "", "metadata CSV folder for product-ID resolution")
}
