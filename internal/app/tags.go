package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/songeyume/bibli/internal/library"
)

func newTagsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag with book counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo()
			if err != nil {
				return err
			}

			facets := library.Recalculate(repo.All(), library.Filter{})

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(facets.Tags)
			}

			if len(facets.Tags) == 0 {
				fmt.Println("No tags found.")
				return nil
			}
			for _, t := range facets.Tags {
				fmt.Printf("  %-24s %s\n",
					color.CyanString(t.Tag),
					color.HiBlackString("(%d)", t.Count))
			}
			fmt.Printf("\n%d tags across %d books\n", len(facets.Tags), repo.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newPublishersCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "publishers",
		Short: "List every publisher with book counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo()
			if err != nil {
				return err
			}

			facets := library.Recalculate(repo.All(), library.Filter{})

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(facets.Publishers)
			}

			if len(facets.Publishers) == 0 {
				fmt.Println("No publishers found.")
				return nil
			}
			for _, p := range facets.Publishers {
				fmt.Printf("  %-28s %s\n", p.Publisher, color.HiBlackString("(%d)", p.Count))
			}
			fmt.Printf("\n%d publishers\n", len(facets.Publishers))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
