package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/songeyume/bibli/internal/series"
)

func newSeriesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "series [book-id]",
		Short: "Track series progress across the library",
		Long: `Without arguments, lists every series declared in the dataset with
read progress. With a book id, shows the series that book belongs to,
including volumes detected from title patterns.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid book id %q", args[0])
				}
				b := repo.ByID(id)
				if b == nil {
					return fmt.Errorf("no book with id %d", id)
				}
				info := series.Detect(repo, *b)
				if info == nil {
					fmt.Printf("%q is a standalone book.\n", b.Title)
					return nil
				}
				if jsonOut {
					return encodeSeries(*info)
				}
				printSeries(*info, true)
				return nil
			}

			all := series.AllSeries(repo)
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			}
			if len(all) == 0 {
				fmt.Println("No series declared in the library.")
				return nil
			}
			for _, info := range all {
				printSeries(info, false)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func encodeSeries(info series.Info) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func printSeries(info series.Info, detailed bool) {
	progress := fmt.Sprintf("%d/%d read", info.ReadCount, info.Total())
	if info.Complete() {
		progress = color.GreenString(progress + " ✓")
	}
	header("%s", info.Name)
	fmt.Printf("  %s\n", progress)

	if detailed {
		for _, v := range info.Volumes {
			mark := color.HiBlackString("·")
			if v.Book.IsRead() {
				mark = color.GreenString("✓")
			}
			cursor := "  "
			if v.Number == info.CurrentVolume {
				cursor = color.YellowString("› ")
			}
			fmt.Printf("  %s%s t.%d %s\n", cursor, mark, v.Number, v.Book.Title)
		}
		if next := info.Next(); next != nil {
			fmt.Printf("  %s %s\n", color.HiBlackString("next:"), next.Book.Title)
		}
	}
	fmt.Println()
}
