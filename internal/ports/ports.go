package ports

import (
	"github.com/PuerkitoBio/goquery"

	"zoteroconv/internal/domain"
)

// Locator walks a parsed report and yields one raw field bundle per
// detected entry, in document order. Implementations only read the tree.
type Locator interface {
	Name() string
	Locate(doc *goquery.Document) []domain.Entry
}

// Writer persists the final record sequence, overwriting any previous output.
type Writer interface {
	Write(records []domain.Record) error
}
