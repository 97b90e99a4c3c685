package types

import "fmt"

// PrintedBook is a physical item. Its category is always "Printed".
type PrintedBook struct {
	*Book
	pages       int
	weightGrams int
}

// NewPrintedBook returns a printed book. Negative pages or weight are
// stored as 0.
func NewPrintedBook(title, author string, pages, weightGrams, copies int) *PrintedBook {
	return &PrintedBook{
		Book:        newBase(title, author, CategoryPrinted, copies),
		pages:       max(0, pages),
		weightGrams: max(0, weightGrams),
	}
}

func (p *PrintedBook) Kind() string     { return KindPrintedBook }
func (p *PrintedBook) Pages() int       { return p.pages }
func (p *PrintedBook) WeightGrams() int { return p.weightGrams }

func (p *PrintedBook) Describe() string {
	return fmt.Sprintf("%s | Pages: %d, Weight: %dg",
		p.describe(KindPrintedBook), p.pages, p.weightGrams)
}
