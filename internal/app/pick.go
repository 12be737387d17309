package app

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/songeyume/bibli/internal/library"
)

func newPickCmd() *cobra.Command {
	var (
		minRating float64
		genre     string
		unread    bool
		seed      int64
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:     "pick",
		Aliases: []string{"wheel"},
		Short:   "Let the wheel pick a book at random",
		Long: `Draws one book at random, weighted by rating so favorites come up
more often. By default the pool is every read book; --unread draws
instead from books not yet read or reviewed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			pf := library.PickFilter{MinRating: minRating, Genre: genre, UnreadOnly: unread}
			picked, found := library.Pick(repo.All(), pf, rng)
			if !found {
				warn("No book matches the pick filters.")
				return nil
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(picked)
			}

			fmt.Println()
			fmt.Printf("  🎡 %s\n", color.New(color.Bold).Sprint(picked.Title))
			fmt.Printf("     %s\n", color.HiBlackString("by %s", picked.Author))
			if picked.IsRead() {
				fmt.Printf("     %s\n", color.YellowString(stars(picked.Rating, picked.RatingScale())))
			}
			fmt.Println()
			fmt.Printf("%s\n", color.HiBlackString("details: bibli info %d", picked.ID))
			return nil
		},
	}

	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "Only books rated at least this")
	cmd.Flags().StringVar(&genre, "genre", "", "Only books carrying this tag")
	cmd.Flags().BoolVar(&unread, "unread", false, "Draw from unread books instead")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (for reproducible picks)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
