package library

import (
	"fmt"
	"slices"
	"strings"
)

// Stats summarizes the catalog at one point in time.
type Stats struct {
	Titles     int      // Number of items.
	Copies     int      // Sum of available copies.
	Authors    int      // Distinct normalized author names.
	Categories []string // Distinct categories, sorted.
}

// Stats computes totals over the current items.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	authors := make(map[string]struct{})
	categories := make(map[string]struct{})
	s := Stats{Titles: len(m.items)}
	for _, item := range m.items {
		s.Copies += item.Copies()
		authors[item.Author()] = struct{}{}
		categories[item.Category()] = struct{}{}
	}
	s.Authors = len(authors)
	s.Categories = make([]string, 0, len(categories))
	for c := range categories {
		s.Categories = append(s.Categories, c)
	}
	slices.Sort(s.Categories)
	return s
}

// Lines renders the summary for display, using "-" when there are no
// categories.
func (s Stats) Lines() []string {
	categories := "-"
	if len(s.Categories) > 0 {
		categories = strings.Join(s.Categories, ", ")
	}
	return []string{
		fmt.Sprintf("Total Titles: %d", s.Titles),
		fmt.Sprintf("Total Copies: %d", s.Copies),
		fmt.Sprintf("Unique Authors: %d", s.Authors),
		"Categories: " + categories,
	}
}
