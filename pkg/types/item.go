package types

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item kinds reported by Kind.
const (
	KindBook        = "Book"
	KindEBook       = "EBook"
	KindPrintedBook = "PrintedBook"
)

// Fixed and default categories.
const (
	CategoryGeneral = "General"
	CategoryEbook   = "Ebook"
	CategoryPrinted = "Printed"
)

// Item is the capability set shared by every catalog entry. Callers work
// through this interface and never inspect the concrete variant.
type Item interface {
	Kind() string
	Title() string
	Author() string
	Category() string

	// Copies returns the number of copies currently available to lend.
	Copies() int

	// SetCopies replaces the available count.
	// Returns ErrNegativeCopies and leaves the count unchanged if n < 0.
	SetCopies(n int) error

	// Borrow takes one copy if any is available and reports whether it did.
	Borrow() bool

	// ReturnCopy adds one copy. No upper bound is enforced.
	ReturnCopy()

	// Describe renders the item on a single line.
	Describe() string
}

// Book is the generic catalog item. EBook and PrintedBook embed it.
type Book struct {
	title    string
	author   string
	category string
	copies   int
}

// NewBook returns a generic item with normalized fields. An empty category
// becomes "General" and a negative copy count is stored as 0.
func NewBook(title, author, category string, copies int) *Book {
	b := newBase(title, author, category, copies)
	if b.category == "" {
		b.category = CategoryGeneral
	}
	return b
}

func newBase(title, author, category string, copies int) *Book {
	return &Book{
		title:    normalize(title),
		author:   normalize(author),
		category: normalize(category),
		copies:   max(0, copies),
	}
}

func (b *Book) Kind() string     { return KindBook }
func (b *Book) Title() string    { return b.title }
func (b *Book) Author() string   { return b.author }
func (b *Book) Category() string { return b.category }
func (b *Book) Copies() int      { return b.copies }

// SetCopies sets the available count directly.
func (b *Book) SetCopies(n int) error {
	if n < 0 {
		return ErrNegativeCopies
	}
	b.copies = n
	return nil
}

// Borrow decrements the available count when it is positive.
func (b *Book) Borrow() bool {
	if b.copies > 0 {
		b.copies--
		return true
	}
	return false
}

// ReturnCopy increments the available count unconditionally.
func (b *Book) ReturnCopy() {
	b.copies++
}

func (b *Book) Describe() string {
	return b.describe(KindBook)
}

// describe renders the shared fields under the given kind label so that
// embedding variants report their own kind.
func (b *Book) describe(kind string) string {
	return fmt.Sprintf("[%s] %s by %s | Category: %s | Copies: %d",
		kind, b.title, b.author, b.category, b.copies)
}

// normalize trims s, then upper-cases the first letter of every run of
// letters and lower-cases the rest, so "j.r.r. o'neil" becomes
// "J.R.R. O'Neil". A Caser keeps state between calls, so both are built per
// call.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	for s != "" {
		r, size := utf8.DecodeRuneInString(s)
		if !unicode.IsLetter(r) {
			end := strings.IndexFunc(s, unicode.IsLetter)
			if end < 0 {
				end = len(s)
			}
			b.WriteString(s[:end])
			s = s[end:]
			continue
		}
		end := strings.IndexFunc(s, isNotLetter)
		if end < 0 {
			end = len(s)
		}
		b.WriteString(upper.String(s[:size]))
		b.WriteString(lower.String(s[size:end]))
		s = s[end:]
	}
	return b.String()
}

func isNotLetter(r rune) bool { return !unicode.IsLetter(r) }

var (
	_ Item = (*Book)(nil)
	_ Item = (*EBook)(nil)
	_ Item = (*PrintedBook)(nil)
)
