package app

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/songeyume/bibli/internal/book"
	"github.com/songeyume/bibli/internal/category"
	"github.com/songeyume/bibli/internal/library"
	"github.com/songeyume/bibli/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	var (
		search    string
		tags      []string
		cat       string
		publisher string
		rating    float64
		spicy     int
		sortBy    string
		page      int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse the library (interactive TUI or text output)",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo()
			if err != nil {
				return err
			}

			view, err := seedView(cmd, repo, search, tags, cat, publisher, rating, spicy, sortBy, page)
			if err != nil {
				return err
			}

			if tui.ShouldUseTUI(cmd) {
				rng := rand.New(rand.NewSource(time.Now().UnixNano()))
				return tui.RunBrowser(repo, view, rng)
			}

			if jsonOut {
				return printPageJSON(view)
			}
			printPageText(view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Search title, author, tags, summary…")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Filter by tag (repeatable, AND)")
	cmd.Flags().StringVarP(&cat, "category", "c", "", "Filter by category ("+strings.Join(categoryKeys(), ", ")+")")
	cmd.Flags().StringVarP(&publisher, "publisher", "p", "", "Filter by publisher")
	cmd.Flags().Float64VarP(&rating, "rating", "r", 0, "Filter by rating (matches r and r+0.5)")
	cmd.Flags().IntVar(&spicy, "spicy", -1, "Filter by spicy level (0-3)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key: readDate, rating, title, author")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

// seedView builds a view with every flag-supplied facet applied.
func seedView(cmd *cobra.Command, repo *book.Repository, search string, tags []string,
	cat, publisher string, rating float64, spicy int, sortBy string, page int) (*library.View, error) {

	view := library.NewView(repo, conf.Library.PageSize)

	if cat != "" {
		k := category.Key(strings.ToLower(cat))
		if !category.Valid(k) {
			return nil, fmt.Errorf("unknown category %q (valid: %s)", cat, strings.Join(categoryKeys(), ", "))
		}
		view.SelectCategory(k)
	}
	if search != "" {
		view.SetSearch(search)
	}
	for _, t := range tags {
		view.ToggleTag(t)
	}
	if publisher != "" {
		view.SelectPublisher(publisher)
	}
	if rating > 0 {
		view.SelectRating(rating)
	}
	if cmd.Flags().Changed("spicy") && spicy >= 0 {
		view.SelectSpicyLevel(spicy)
	}
	if sortBy != "" {
		k, err := library.ParseSortKey(sortBy)
		if err != nil {
			return nil, err
		}
		view.SetSort(k)
	}
	if page > 1 {
		view.SetPage(page)
	}
	return view, nil
}

func categoryKeys() []string {
	var keys []string
	for _, r := range category.All() {
		keys = append(keys, string(r.Key))
	}
	return keys
}

// printPageText renders one page of results as aligned columns.
func printPageText(view *library.View) {
	page := view.Page()

	if page.TotalItems == 0 {
		fmt.Println("No books match the current filters.")
		return
	}

	for _, b := range page.Items {
		rule := category.ByKey(category.Classify(b))
		catName := ""
		if rule != nil {
			catName = rule.Name
		}
		ratingStr := "-"
		if b.IsRead() {
			ratingStr = fmt.Sprintf("%.1f", b.Rating)
		}
		fmt.Printf("  %-44s %-24s %-10s %4s  %s\n",
			truncate(b.Title, 44),
			color.HiBlackString(truncate(b.Author, 24)),
			color.CyanString(catName),
			color.YellowString(ratingStr),
			color.HiBlackString(strings.Join(b.Tags, ", ")),
		)
	}

	fmt.Printf("\n%d books · page %d/%d\n", page.TotalItems, page.Number, page.TotalPages)
}

// printPageJSON emits the current page plus pagination metadata.
func printPageJSON(view *library.View) error {
	page := view.Page()
	out := struct {
		Books      []book.Book `json:"books"`
		Page       int         `json:"page"`
		TotalPages int         `json:"totalPages"`
		TotalItems int         `json:"totalItems"`
	}{page.Items, page.Number, page.TotalPages, page.TotalItems}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// truncate shortens a string to max visible runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
