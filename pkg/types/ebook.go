package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EBook is a digital item. Its category is always "Ebook".
type EBook struct {
	*Book
	format string
	sizeMB float64
}

// NewEBook returns an e-book with an upper-cased format. A negative or NaN
// size is stored as 0.
func NewEBook(title, author, format string, sizeMB float64, copies int) *EBook {
	if sizeMB < 0 || math.IsNaN(sizeMB) {
		sizeMB = 0
	}
	return &EBook{
		Book:   newBase(title, author, CategoryEbook, copies),
		format: strings.ToUpper(strings.TrimSpace(format)),
		sizeMB: sizeMB,
	}
}

func (e *EBook) Kind() string    { return KindEBook }
func (e *EBook) Format() string  { return e.format }
func (e *EBook) SizeMB() float64 { return e.sizeMB }

func (e *EBook) Describe() string {
	return fmt.Sprintf("%s | Format: %s, Size: %sMB",
		e.describe(KindEBook), e.format, formatSize(e.sizeMB))
}

// formatSize keeps one decimal on whole values ("1.0") and otherwise uses
// the shortest exact representation ("2.25").
func formatSize(mb float64) string {
	if mb == math.Trunc(mb) && !math.IsInf(mb, 0) {
		return strconv.FormatFloat(mb, 'f', 1, 64)
	}
	return strconv.FormatFloat(mb, 'f', -1, 64)
}
