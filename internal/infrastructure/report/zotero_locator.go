package report

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"zoteroconv/internal/domain"
	"zoteroconv/internal/ports"
)

// journalLabels lists the row labels that can carry the container name,
// in lookup priority order. Different Zotero item types render different
// subsets (article/conference paper/book); the first match wins.
var journalLabels = []string{"Publication", "Proceedings Title", "Publisher", "Journal"}

// ZoteroLocator extracts raw field bundles from a Zotero
// "Generate Report from Collection" HTML export.
type ZoteroLocator struct {
	logger *slog.Logger
}

var _ ports.Locator = (*ZoteroLocator)(nil)

// NewZoteroLocator wires an optional logger for per-entry diagnostics.
func NewZoteroLocator(logger *slog.Logger) *ZoteroLocator {
	return &ZoteroLocator{logger: logger}
}

// Name identifies the strategy inside the registry.
func (z *ZoteroLocator) Name() string {
	return "zotero"
}

// Locate yields one Entry per li.item container, in document order.
// Absent fields stay empty; heterogeneous entries never cause an error.
func (z *ZoteroLocator) Locate(doc *goquery.Document) []domain.Entry {
	entries := make([]domain.Entry, 0)

	doc.Find("li.item").Each(func(i int, item *goquery.Selection) {
		entry := parseItem(item)
		if entry.Abstract == "" {
			z.debug("entry has no abstract", "index", i, "title", entry.Title)
		}
		if entry.Date == "" {
			z.debug("entry has no date", "index", i, "title", entry.Title)
		}
		entries = append(entries, entry)
	})

	z.debug("report located entries", "count", len(entries))
	return entries
}

func parseItem(item *goquery.Selection) domain.Entry {
	var entry domain.Entry

	entry.Title = strings.TrimSpace(item.Find("h2").First().Text())

	table := item.Find("table").First()
	if table.Length() == 0 {
		return entry
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		th := row.Find("th").First()
		td := row.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return
		}

		label := strings.TrimSpace(th.Text())
		value := td.Text()

		switch {
		case th.HasClass("author") || strings.EqualFold(label, "Author"):
			if name := strings.TrimSpace(value); name != "" {
				entry.Authors = append(entry.Authors, name)
			}
		case strings.EqualFold(label, "Date"):
			entry.Date = value
		case isJournalLabel(label):
			if entry.Journal == "" {
				entry.Journal = value
			}
		case strings.EqualFold(label, "Abstract"):
			entry.Abstract = value
		}
	})

	return entry
}

func isJournalLabel(label string) bool {
	for _, probe := range journalLabels {
		if strings.EqualFold(label, probe) {
			return true
		}
	}
	return false
}

func (z *ZoteroLocator) debug(msg string, args ...interface{}) {
	if z.logger != nil {
		z.logger.Debug(msg, args...)
	}
}
