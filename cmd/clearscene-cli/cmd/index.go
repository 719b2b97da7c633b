package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clearscene/internal/adapters/sqlite"
	"clearscene/internal/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the catalog index",
	Long: `Rebuild the SQLite catalog index from a full walk of the catalog
tree. The index is a derived cache used for fast listings; the directory
tree stays the source of truth.

Example:
  clearscene-cli index --root ~/landsat/quicklooks`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := GetRepo()

		idx := sqlite.NewIndex()
		if err := idx.Open(repo.Root()); err != nil {
			return err
		}
		defer idx.Close()

		stats, err := idx.SyncFull(repo)
		if err != nil {
			return err
		}
		fmt.Printf("scanned %d files, indexed %d scenes (%d skipped) in %s\n",
			stats.FilesScanned, stats.ScenesAdded, stats.Skipped,
			stats.Duration.Round(time.Millisecond))

		clear, err := idx.ListByClassification(domain.Clear)
		if err != nil {
			return err
		}
		cloudy, err := idx.ListByClassification(domain.Cloudy)
		if err != nil {
			return err
		}
		fmt.Printf("%d clear, %d cloudy\n", len(clear), len(cloudy))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
