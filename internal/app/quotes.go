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
	"github.com/songeyume/bibli/internal/quotes"
)

func newQuotesCmd() *cobra.Command {
	var (
		bookTitle string
		author    string
		tag       string
		page      int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Browse quotes collected from the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo()
			if err != nil {
				return err
			}

			all := quotes.Collect(repo)
			f := quotes.Filter{BookTitle: bookTitle, Author: author, Tag: tag}
			matched := f.Apply(all)

			pageSize := conf.Library.QuotesPageSize
			if pageSize <= 0 {
				pageSize = quotes.DefaultPageSize
			}
			number := library.ClampPage(page, len(matched), pageSize)
			start := (number - 1) * pageSize
			end := start + pageSize
			if end > len(matched) {
				end = len(matched)
			}
			var items []quotes.Quote
			if start < len(matched) {
				items = matched[start:end]
			}

			if jsonOut {
				out := struct {
					Quotes     []quotes.Quote `json:"quotes"`
					Page       int            `json:"page"`
					TotalPages int            `json:"totalPages"`
					Total      int            `json:"total"`
				}{items, number, library.TotalPages(len(matched), pageSize), len(matched)}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if len(matched) == 0 {
				fmt.Println("No quotes match.")
				return nil
			}

			for _, q := range items {
				printQuote(q)
			}
			fmt.Printf("%d quotes · page %d/%d\n",
				len(matched), number, library.TotalPages(len(matched), pageSize))
			return nil
		},
	}

	cmd.Flags().StringVar(&bookTitle, "book", "", "Only quotes from this book")
	cmd.Flags().StringVar(&author, "author", "", "Only quotes from this author")
	cmd.Flags().StringVar(&tag, "tag", "", "Only quotes from books carrying this tag")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	cmd.AddCommand(
		newQuotesTodayCmd(),
		newQuotesRandomCmd(),
	)

	return cmd
}

func newQuotesTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the quote of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo()
			if err != nil {
				return err
			}

			q, found := quotes.OfTheDay(quotes.Collect(repo), time.Now())
			if !found {
				warn("No quotes in the library yet.")
				return nil
			}
			printQuote(q)
			return nil
		},
	}
}

func newQuotesRandomCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			q, found := quotes.Random(quotes.Collect(repo), rng)
			if !found {
				warn("No quotes in the library yet.")
				return nil
			}
			printQuote(q)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (for reproducible picks)")
	return cmd
}

func printQuote(q quotes.Quote) {
	fmt.Printf("  %s\n", color.WhiteString("« %s »", q.Text))
	fmt.Printf("    %s\n\n", color.HiBlackString("%s, %s", q.BookTitle, q.Author))
}
