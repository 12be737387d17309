package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/songeyume/bibli/internal/category"
	"github.com/songeyume/bibli/internal/series"
	"github.com/songeyume/bibli/internal/similar"
	"github.com/songeyume/bibli/internal/util"
)

func newInfoCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info <book-id>",
		Short: "Show the full sheet for one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid book id %q", args[0])
			}

			repo, err := loadRepo()
			if err != nil {
				return err
			}

			b := repo.ByID(id)
			if b == nil {
				return fmt.Errorf("no book with id %d", id)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(b)
			}

			header("%s", b.Title)
			fmt.Printf("  %s %s\n", color.HiBlackString("by"), b.Author)
			fmt.Printf("  %s %s\n", color.HiBlackString("permalink"), util.BookPath(b.ID, b.Title))
			fmt.Println()

			if b.IsRead() {
				fmt.Printf("  %s %s (%s/%s)\n",
					color.HiBlackString("rating"),
					color.YellowString(stars(b.Rating, b.RatingScale())),
					strconv.FormatFloat(b.Rating, 'f', -1, 64),
					strconv.FormatFloat(b.RatingScale(), 'f', -1, 64))
			} else {
				fmt.Printf("  %s\n", color.HiBlackString("not read yet"))
			}

			if rule := category.ByKey(category.Classify(*b)); rule != nil {
				fmt.Printf("  %s %s %s\n", color.HiBlackString("category"), rule.Icon, rule.Name)
			}
			if len(b.Tags) > 0 {
				fmt.Printf("  %s %s\n", color.HiBlackString("tags"), color.CyanString(strings.Join(b.Tags, ", ")))
			}
			if b.HasPublisher() {
				fmt.Printf("  %s %s\n", color.HiBlackString("publisher"), b.Publisher)
			}
			if b.HasSpicyLevel() {
				fmt.Printf("  %s %d/3\n", color.HiBlackString("spicy"), *b.SpicyLevel)
			}
			if !b.ReadDate.IsZero() {
				fmt.Printf("  %s %s\n", color.HiBlackString("read on"), b.ReadDate.Format("2006-01-02"))
			}
			if b.PublishedOnInstagram && b.InstagramLink != "" {
				fmt.Printf("  %s %s\n", color.HiBlackString("instagram"), b.InstagramLink)
			}
			if b.PublishedOnBabelio && b.BabelioLink != "" {
				fmt.Printf("  %s %s\n", color.HiBlackString("babelio"), b.BabelioLink)
			}

			if info := series.Detect(repo, *b); info != nil {
				fmt.Println()
				header("Series: %s", info.Name)
				fmt.Printf("  volume %d of %d · %d read\n", info.CurrentVolume, info.Total(), info.ReadCount)
				if next := info.Next(); next != nil {
					fmt.Printf("  next: %s\n", next.Book.Title)
				} else if info.Complete() {
					ok("series complete")
				}
			}

			if b.Summary != "" {
				fmt.Println()
				header("Summary")
				fmt.Println(indent(b.Summary, "  "))
			}
			if b.PersonalReview != "" {
				fmt.Println()
				header("Review")
				fmt.Println(indent(b.PersonalReview, "  "))
			}
			if len(b.Quotes) > 0 {
				fmt.Println()
				fmt.Printf("%s (see 'bibli quotes --book %q')\n",
					color.HiBlackString("%d quote(s)", len(b.Quotes)), b.Title)
			}

			if matches := similar.Find(repo, *b, 4); len(matches) > 0 {
				fmt.Println()
				header("Similar reads")
				for _, m := range matches {
					line := fmt.Sprintf("  %s (%s)", m.Book.Title, m.Book.Author)
					if len(m.CommonTags) > 0 {
						line += " " + color.HiBlackString("[%s]", strings.Join(m.CommonTags, ", "))
					}
					fmt.Println(line)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// stars renders a rating as filled/empty star glyphs for text output.
func stars(rating, max float64) string {
	half := rating-float64(int(rating)) >= 0.25 && rating-float64(int(rating)) < 0.75
	total := int(max)
	if total <= 0 {
		total = 5
	}
	var s strings.Builder
	for i := 0; i < total; i++ {
		switch {
		case i < int(rating):
			s.WriteString("★")
		case i == int(rating) && half:
			s.WriteString("⯨")
		default:
			s.WriteString("☆")
		}
	}
	return s.String()
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
