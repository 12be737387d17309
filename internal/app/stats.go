package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/songeyume/bibli/internal/stats"
)

func newStatsCmd() *cobra.Command {
	var (
		months  int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Reading statistics for the whole library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo()
			if err != nil {
				return err
			}

			summary := stats.Compute(repo)
			monthly := stats.Monthly(repo, time.Now(), months)

			if jsonOut {
				out := struct {
					stats.Summary
					Monthly []stats.MonthCount `json:"monthly"`
				}{summary, monthly}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			header("Library")
			fmt.Printf("  %-20s %d\n", "books read", summary.TotalBooks)
			fmt.Printf("  %-20s %.1f/5\n", "average rating", summary.AverageRating)
			fmt.Printf("  %-20s %d\n", "distinct authors", summary.DistinctAuthors)
			fmt.Printf("  %-20s %d\n", "on instagram", summary.OnInstagram)
			fmt.Printf("  %-20s %d\n", "on babelio", summary.OnBabelio)

			fmt.Println()
			header("Ratings")
			for _, bucket := range summary.RatingDistribution {
				fmt.Printf("  %-14s %s %d\n",
					bucket.Label,
					color.YellowString(strings.Repeat("█", bucket.Count)),
					bucket.Count)
			}

			if len(summary.TopAuthors) > 0 {
				fmt.Println()
				header("Top authors")
				for _, a := range summary.TopAuthors {
					fmt.Printf("  %-28s %s\n", a.Author, color.HiBlackString("(%d)", a.Count))
				}
			}

			if len(summary.TopTags) > 0 {
				fmt.Println()
				header("Top tags")
				for _, t := range summary.TopTags {
					fmt.Printf("  %-28s %s\n", color.CyanString(t.Tag), color.HiBlackString("(%d)", t.Count))
				}
			}

			if len(monthly) > 0 {
				fmt.Println()
				header("Last %d months", months)
				for _, m := range monthly {
					fmt.Printf("  %d-%02d  %s %d\n",
						m.Year, int(m.Month),
						color.GreenString(strings.Repeat("█", m.Count)),
						m.Count)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "Months of reading history to chart")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
