// Package series groups books into series and tracks reading progress.
//
// Explicit series/seriesOrder metadata is authoritative. When a book
// carries neither, a small set of title patterns ("Tome N", "T1",
// "- Volume N") is tried as a fallback. Pattern detection is
// approximate (unrelated titles sharing a numeric suffix can misgroup),
// so the pattern set is frozen and explicit metadata always wins.
package series

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/songeyume/bibli/internal/book"
)

// titlePatterns, in match priority order. Each captures (series name,
// volume number).
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.+?),?\s+[Tt]ome\s+(\d+)`),
	regexp.MustCompile(`^(.+?)\s+[Tt](\d+)\b`),
	regexp.MustCompile(`^(.+?)\s+[-:]\s+[Vv]olume\s+(\d+)`),
	regexp.MustCompile(`^(.+?)\s+[-:]\s+[Ll]ivre\s+(\d+)`),
	regexp.MustCompile(`^(.+?)\s+(\d+)$`),
}

// Volume is one book inside a series.
type Volume struct {
	Book   book.Book
	Number int
}

// Info describes the series a book belongs to.
type Info struct {
	Name          string
	Volumes       []Volume
	CurrentVolume int
	ReadCount     int
	Explicit      bool // true when built from series metadata, not title patterns
}

// Total returns the number of known volumes.
func (s Info) Total() int { return len(s.Volumes) }

// Progress returns the read fraction in percent.
func (s Info) Progress() float64 {
	if len(s.Volumes) == 0 {
		return 0
	}
	return float64(s.ReadCount) / float64(len(s.Volumes)) * 100
}

// Complete reports whether every volume has been read.
func (s Info) Complete() bool {
	return len(s.Volumes) > 0 && s.ReadCount == len(s.Volumes)
}

// Next returns the first unread volume after the current one, or nil.
func (s Info) Next() *Volume {
	for i := range s.Volumes {
		v := s.Volumes[i]
		if v.Number > s.CurrentVolume && !v.Book.IsRead() {
			return &v
		}
	}
	return nil
}

// Previous returns the volume just before the current book, or nil.
func (s Info) Previous() *Volume {
	for i := range s.Volumes {
		if s.Volumes[i].Number == s.CurrentVolume && i > 0 {
			v := s.Volumes[i-1]
			return &v
		}
	}
	return nil
}

// parseTitle tries the fallback patterns against a title.
func parseTitle(title string) (name string, volume int, ok bool) {
	for _, re := range titlePatterns {
		m := re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		return strings.TrimSpace(m[1]), n, true
	}
	return "", 0, false
}

// Detect returns the series the book belongs to, or nil when the book
// stands alone. A "series" of one volume is not a series.
func Detect(repo *book.Repository, b book.Book) *Info {
	name, volume, explicit := b.Series, b.SeriesOrder, true
	if name == "" || volume == 0 {
		var ok bool
		name, volume, ok = parseTitle(b.Title)
		if !ok {
			return nil
		}
		explicit = false
	}

	var volumes []Volume
	for _, other := range repo.All() {
		if explicit {
			if other.Series == name {
				volumes = append(volumes, Volume{Book: other, Number: other.SeriesOrder})
			}
			continue
		}
		if otherName, n, ok := parseTitle(other.Title); ok && otherName == name {
			volumes = append(volumes, Volume{Book: other, Number: n})
		}
	}
	if len(volumes) <= 1 {
		return nil
	}

	sort.SliceStable(volumes, func(i, j int) bool {
		return volumes[i].Number < volumes[j].Number
	})

	read := 0
	for _, v := range volumes {
		if v.Book.IsRead() {
			read++
		}
	}
	return &Info{
		Name:          name,
		Volumes:       volumes,
		CurrentVolume: volume,
		ReadCount:     read,
		Explicit:      explicit,
	}
}

// AllSeries groups the whole repository by explicit series metadata,
// sorted by name. Pattern-only series are left out here: listing every
// heuristic grouping would surface the misgroups the fallback allows.
func AllSeries(repo *book.Repository) []Info {
	byName := make(map[string][]Volume)
	for _, b := range repo.All() {
		if b.Series == "" || b.SeriesOrder == 0 {
			continue
		}
		byName[b.Series] = append(byName[b.Series], Volume{Book: b, Number: b.SeriesOrder})
	}
	var out []Info
	for name, volumes := range byName {
		if len(volumes) <= 1 {
			continue
		}
		sort.SliceStable(volumes, func(i, j int) bool {
			return volumes[i].Number < volumes[j].Number
		})
		read := 0
		for _, v := range volumes {
			if v.Book.IsRead() {
				read++
			}
		}
		out = append(out, Info{Name: name, Volumes: volumes, ReadCount: read, Explicit: true})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
