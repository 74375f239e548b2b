package report

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const heterogeneousReport = `
<html><body>
<ul class="report combineChildItems">
  <li id="item_1" class="item journalArticle">
    <h2>Deep Learning for Birds</h2>
    <table>
      <tr><th class="author">Author</th><td>John Smith</td></tr>
      <tr><th class="author">Author</th><td>Mary Jones</td></tr>
      <tr><th>Date</th><td>May 1989</td></tr>
      <tr><th>Publication</th><td>Nature</td></tr>
      <tr><th>Abstract</th><td>We study
birds with networks.</td></tr>
    </table>
  </li>
  <li id="item_2" class="item conferencePaper">
    <h2>Graphs at Scale</h2>
    <table>
      <tr><th class="author">Author</th><td>Kim Lee</td></tr>
      <tr><th>Proceedings Title</th><td>Proc. of GraphConf</td></tr>
      <tr><th>Publisher</th><td>ACM</td></tr>
      <tr><th>Abstract</th><td>Large graphs.</td></tr>
    </table>
  </li>
  <li id="item_3" class="item book">
    <h2>A Book Without Extras</h2>
    <table>
      <tr><th>Publisher</th><td>Springer</td></tr>
      <tr><th>Date</th><td>2003-11</td></tr>
    </table>
  </li>
</ul>
</body></html>`

func TestLocateHeterogeneousEntries(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(heterogeneousReport))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	loc := NewZoteroLocator(nil)
	entries := loc.Locate(doc)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Title != "Deep Learning for Birds" {
		t.Fatalf("unexpected title: %q", first.Title)
	}
	if len(first.Authors) != 2 || first.Authors[0] != "John Smith" || first.Authors[1] != "Mary Jones" {
		t.Fatalf("unexpected authors: %v", first.Authors)
	}
	if first.Date != "May 1989" {
		t.Fatalf("unexpected date: %q", first.Date)
	}
	if first.Journal != "Nature" {
		t.Fatalf("unexpected journal: %q", first.Journal)
	}
	if !strings.Contains(first.Abstract, "birds with networks") {
		t.Fatalf("unexpected abstract: %q", first.Abstract)
	}

	// Proceedings Title outranks Publisher because it appears first.
	second := entries[1]
	if second.Journal != "Proc. of GraphConf" {
		t.Fatalf("unexpected journal for conference paper: %q", second.Journal)
	}
	if second.Date != "" {
		t.Fatalf("expected empty date, got %q", second.Date)
	}

	third := entries[2]
	if third.Journal != "Springer" {
		t.Fatalf("unexpected journal for book: %q", third.Journal)
	}
	if len(third.Authors) != 0 {
		t.Fatalf("expected no authors, got %v", third.Authors)
	}
	if third.Abstract != "" {
		t.Fatalf("expected empty abstract, got %q", third.Abstract)
	}
}

func TestLocateCaseInsensitiveLabels(t *testing.T) {
	t.Parallel()

	html := `
	<li class="item">
	  <h2>Mixed Case Labels</h2>
	  <table>
	    <tr><th>author</th><td>Ada Lovelace</td></tr>
	    <tr><th>DATE</th><td>1843</td></tr>
	    <tr><th>publication</th><td>Taylor's Journal</td></tr>
	    <tr><th>ABSTRACT</th><td>Notes on the engine.</td></tr>
	  </table>
	</li>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	entries := NewZoteroLocator(nil).Locate(doc)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if len(entry.Authors) != 1 || entry.Authors[0] != "Ada Lovelace" {
		t.Fatalf("unexpected authors: %v", entry.Authors)
	}
	if entry.Date != "1843" {
		t.Fatalf("unexpected date: %q", entry.Date)
	}
	if entry.Journal != "Taylor's Journal" {
		t.Fatalf("unexpected journal: %q", entry.Journal)
	}
	if entry.Abstract != "Notes on the engine." {
		t.Fatalf("unexpected abstract: %q", entry.Abstract)
	}
}

func TestLocateTolerantOfSparseMarkup(t *testing.T) {
	t.Parallel()

	// Unclosed tags and a missing table must still yield one entry per
	// li.item with empty sentinels.
	html := `<ul><li class="item"><h2>Only a Title</li><li class="item"></li></ul>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	entries := NewZoteroLocator(nil).Locate(doc)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "Only a Title" {
		t.Fatalf("unexpected title: %q", entries[0].Title)
	}
	if entries[1].Title != "" || entries[1].Journal != "" || entries[1].Abstract != "" {
		t.Fatalf("expected empty fields, got %+v", entries[1])
	}
}
