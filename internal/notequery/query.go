package notequery

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the order of a note list.
type SortMode string

const (
	Newest  SortMode = "newest"
	Oldest  SortMode = "oldest"
	TitleAZ SortMode = "titleAZ"
	TitleZA SortMode = "titleZA"
)

// Modes lists the supported sort modes in menu order.
var Modes = []SortMode{Newest, Oldest, TitleAZ, TitleZA}

// ParseSortMode accepts a mode name ignoring case.
func ParseSortMode(s string) (SortMode, error) {
	for _, m := range Modes {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown sort mode %q", s)
}

// Match reports whether query occurs in the note's title or body, ignoring
// case. An empty query matches everything.
func Match(n models.Note, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Body), q)
}

// Filter returns the notes matching query, keeping their order.
func Filter(notes []models.Note, query string) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if Match(n, query) {
			out = append(out, n)
		}
	}
	return out
}

// Sorter orders notes, comparing titles by the rules of one language.
type Sorter struct {
	tag language.Tag
}

func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{tag: tag}
}

// NewSorterFor parses a BCP 47 locale such as "en" or "sv-SE". An empty
// string selects the root collation order.
func NewSorterFor(locale string) (*Sorter, error) {
	if strings.TrimSpace(locale) == "" {
		return NewSorter(language.Und), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return NewSorter(tag), nil
}

// Sort returns a copy of notes in the given order. Notes with equal keys keep
// their relative order. An unknown mode returns the copy unchanged.
func (s *Sorter) Sort(notes []models.Note, mode SortMode) []models.Note {
	out := slices.Clone(notes)
	if out == nil {
		out = []models.Note{}
	}

	switch mode {
	case Newest:
		slices.SortStableFunc(out, func(a, b models.Note) int { return cmp.Compare(b.UpdatedAt, a.UpdatedAt) })
	case Oldest:
		slices.SortStableFunc(out, func(a, b models.Note) int { return cmp.Compare(a.UpdatedAt, b.UpdatedAt) })
	case TitleAZ, TitleZA:
		// A Collator keeps internal buffers and is not safe to share.
		c := collate.New(s.tag)
		dir := 1
		if mode == TitleZA {
			dir = -1
		}
		slices.SortStableFunc(out, func(a, b models.Note) int {
			return dir * c.CompareString(a.Title, b.Title)
		})
	}
	return out
}

// Apply filters by query and then sorts.
func (s *Sorter) Apply(notes []models.Note, query string, mode SortMode) []models.Note {
	return s.Sort(Filter(notes, query), mode)
}
