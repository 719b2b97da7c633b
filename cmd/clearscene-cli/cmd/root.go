package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clearscene/internal/adapters/filesystem"
	"clearscene/internal/config"
	"clearscene/internal/ports"
)

var (
	rootPath string
	repo     ports.CatalogRepository
)

var rootCmd = &cobra.Command{
	Use:   "clearscene-cli",
	Short: "CLI for counting clear Landsat quicklook scenes",
	Long: `clearscene-cli works on a quicklook catalog laid out as
<root>/<tile>/<year>/*.jpg, where a human has moved cloudy quicklooks
into per-year cloudy/ subfolders.

It counts clear scenes per tile/year/month, writes clear and cloudy
identifier lists, and normalizes scene identifiers between encodings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo = filesystem.NewRepository(rootPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.RootPath(), "path to the quicklook catalog root")
}

// GetRepo returns the initialized catalog repository
func GetRepo() ports.CatalogRepository {
	return repo
}
