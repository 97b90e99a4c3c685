package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/librarian/pkg/types"
)

func TestStatsEmpty(t *testing.T) {
	s := NewManager().Stats()

	assert.Equal(t, 0, s.Titles)
	assert.Equal(t, 0, s.Copies)
	assert.Equal(t, 0, s.Authors)
	assert.Empty(t, s.Categories)
	assert.Equal(t, []string{
		"Total Titles: 0",
		"Total Copies: 0",
		"Unique Authors: 0",
		"Categories: -",
	}, s.Lines())
}

func TestStats(t *testing.T) {
	m := NewManager()
	m.Add(types.NewPrintedBook("the hobbit", "tolkien", 310, 400, 2))
	m.Add(types.NewEBook("the silmarillion", "TOLKIEN", "pdf", 3, 1))
	m.Add(types.NewBook("emma", "jane austen", "", 4))
	m.Add(types.NewBook("dune", "frank herbert", "", 0))

	s := m.Stats()

	assert.Equal(t, 4, s.Titles)
	assert.Equal(t, 7, s.Copies)
	assert.Equal(t, 3, s.Authors, "authors compare after normalization")
	assert.Equal(t, []string{"Ebook", "General", "Printed"}, s.Categories)
	assert.Equal(t, "Categories: Ebook, General, Printed", s.Lines()[3])
}

func TestStatsTracksBorrowAndDelete(t *testing.T) {
	m := NewManager()
	id := m.Add(types.NewBook("emma", "jane austen", "", 2))
	m.Add(types.NewPrintedBook("the hobbit", "tolkien", 1, 1, 1))

	m.Borrow(id)
	assert.Equal(t, 2, m.Stats().Copies)

	m.Delete(id)
	s := m.Stats()
	assert.Equal(t, 1, s.Titles)
	assert.Equal(t, 1, s.Authors)
	assert.Equal(t, []string{"Printed"}, s.Categories)
}
