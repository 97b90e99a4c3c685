// Package library implements the catalog manager: it owns the id space and
// the collection of items and mediates every operation on them.
package library

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/librarian/pkg/types"
)

// Outcome lines returned by the id-based operations and the listings.
const (
	MsgInvalidID   = "Invalid ID."
	MsgNoCopies    = "No copies available."
	MsgEmptyList   = "(no items yet)"
	borrowedPrefix = "Borrowed: "
	returnedPrefix = "Returned: "
	deletedPrefix  = "Deleted: "
)

// ErrNotFound is returned by Get when no item has the requested id.
var ErrNotFound = errors.New("item not found")

// Manager holds the catalog for one session. Ids start at 1, increase with
// every Add, and are never reissued after Delete.
type Manager struct {
	mu        sync.Mutex
	items     map[int]types.Item
	nextID    int
	sessionID uuid.UUID
	logger    *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager returns an empty catalog.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		items:  make(map[int]types.Item),
		nextID: 1,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	m.sessionID = id
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("session", m.sessionID.String())
	return m
}

// SessionID identifies this catalog in log records.
func (m *Manager) SessionID() uuid.UUID {
	return m.sessionID
}

// Add stores item under the next id and returns that id.
func (m *Manager) Add(item types.Item) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.items[id] = item
	m.nextID++

	m.logger.Debug("item added", "id", id, "kind", item.Kind(), "title", item.Title())
	return id
}

// Len returns the number of items in the catalog.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Get returns the item with the given id.
// Returns ErrNotFound if the id is absent.
//
// The returned item is the one the catalog holds, not a copy. Its methods
// are not guarded by the manager's lock, so callers sharing a Manager across
// goroutines should change copies through Borrow, ReturnItem and SetCopies
// and read through Show, ListAll and Stats.
func (m *Manager) Get(id int) (types.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("get item %d: %w", id, ErrNotFound)
	}
	return item, nil
}

// ListAll renders every item in insertion order, or a single placeholder
// line when the catalog is empty.
func (m *Manager) ListAll() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) == 0 {
		return []string{MsgEmptyList}
	}
	lines := make([]string, 0, len(m.items))
	for _, id := range m.orderedIDs() {
		lines = append(lines, line(id, m.items[id]))
	}
	return lines
}

// Search returns the items whose title, author, or category contains
// keyword, ignoring case and surrounding whitespace. When nothing matches the
// result is a single placeholder line quoting the keyword as given.
func (m *Manager) Search(keyword string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := strings.ToLower(strings.TrimSpace(keyword))
	var lines []string
	for _, id := range m.orderedIDs() {
		item := m.items[id]
		if strings.Contains(strings.ToLower(item.Title()), k) ||
			strings.Contains(strings.ToLower(item.Author()), k) ||
			strings.Contains(strings.ToLower(item.Category()), k) {
			lines = append(lines, line(id, item))
		}
	}
	if len(lines) == 0 {
		return []string{fmt.Sprintf("(no match for '%s')", keyword)}
	}
	return lines
}

// Show renders a single item.
func (m *Manager) Show(id int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return MsgInvalidID
	}
	return line(id, item)
}

// Borrow lends one copy of the item.
func (m *Manager) Borrow(id int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return MsgInvalidID
	}
	if !item.Borrow() {
		return MsgNoCopies
	}
	return borrowedPrefix + item.Title()
}

// ReturnItem takes one copy of the item back.
func (m *Manager) ReturnItem(id int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return MsgInvalidID
	}
	item.ReturnCopy()
	return returnedPrefix + item.Title()
}

// Delete removes the item. Remaining ids are left as they are.
func (m *Manager) Delete(id int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return MsgInvalidID
	}
	delete(m.items, id)

	m.logger.Debug("item deleted", "id", id, "title", item.Title())
	return deletedPrefix + item.Title()
}

// SetCopies overwrites the available count of the item. An absent id is an
// ordinary outcome; a negative count returns an error wrapping
// types.ErrNegativeCopies.
func (m *Manager) SetCopies(id, n int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return MsgInvalidID, nil
	}
	if err := item.SetCopies(n); err != nil {
		return "", fmt.Errorf("set copies of item %d: %w", id, err)
	}

	m.logger.Debug("copies set", "id", id, "title", item.Title(), "copies", n)
	return fmt.Sprintf("Copies set: %s = %d", item.Title(), n), nil
}

// orderedIDs returns the current ids in insertion order. Ids are issued in
// increasing order, so sorting them restores the order of Add calls.
// The caller must hold m.mu.
func (m *Manager) orderedIDs() []int {
	ids := make([]int, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func line(id int, item types.Item) string {
	return fmt.Sprintf("ID %d: %s", id, item.Describe())
}
