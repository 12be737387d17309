package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/songeyume/bibli/internal/book"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the library back out as normalized JSON",
		Long: `Re-encodes the dataset with defaults applied (empty tag and quote
lists, date normalization) and writes it to --output. The source
dataset is never rewritten in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			repo, err := loadRepo()
			if err != nil {
				return err
			}

			if err := book.Export(output, repo); err != nil {
				return fmt.Errorf("exporting library: %w", err)
			}
			ok("exported %d books to %s", repo.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
