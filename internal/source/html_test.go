package source

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

const sampleCard = `
<div class="srp-jobtuple-wrapper" data-job-id="91001">
  <a class="title" href="https://example.com/job/91001">Backend Engineer</a>
  <span class="comp-name">Acme Systems</span>
  <span class="rating"><span class="main-2">4.2</span></span>
  <span class="exp-wrap"><span class="expwdth">3-6 Yrs</span></span>
  <span class="sal-wrap"><span title="12-18 Lacs PA">12-18 Lacs PA</span></span>
  <span class="loc-wrap"><span class="locWdth">Pune, Bengaluru</span></span>
  <span class="job-desc">
    Operate cloud infrastructure
    and keep it running.
  </span>
  <ul class="tags-gt">
    <li class="tag-li">AWS</li>
    <li class="tag-li">Linux</li>
    <li class="tag-li"> </li>
  </ul>
  <span class="job-post-day">3 Days Ago</span>
</div>`

const samplePage = `
<html><body>
` + sampleCard + `
<div class="srp-jobtuple-wrapper" data-job-id="91002">
  <a class="title" href="https://example.com/job/91002">Data Engineer</a>
  <span class="comp-name">Globex</span>
</div>
<div class="styles_pages__v1rAK">
  <a>1</a>
  <span class="styles_selected__j3uvq">2</span>
  <a>3</a>
  <a>12</a>
</div>
</body></html>`

func TestEntriesFromDoc(t *testing.T) {
	doc := mustDoc(t, samplePage)
	entries := entriesFromDoc(doc, DefaultSelectors())

	if len(entries) != 2 {
		t.Fatalf("found %d cards, want 2", len(entries))
	}

	entry := entries[0]
	if entry.ID() != "91001" {
		t.Fatalf("ID = %q, want 91001", entry.ID())
	}

	fields := map[string]string{
		FieldTitle:       "Backend Engineer",
		FieldLink:        "https://example.com/job/91001",
		FieldCompany:     "Acme Systems",
		FieldRating:      "4.2",
		FieldExperience:  "3-6 Yrs",
		FieldSalary:      "12-18 Lacs PA",
		FieldLocation:    "Pune, Bengaluru",
		FieldDescription: "Operate cloud infrastructure and keep it running.",
		FieldPosted:      "3 Days Ago",
	}
	for name, want := range fields {
		got, ok := entry.Field(name)
		if !ok {
			t.Fatalf("field %s missing", name)
		}
		if got != want {
			t.Fatalf("field %s = %q, want %q", name, got, want)
		}
	}

	skills := entry.List(ListSkills)
	if !reflect.DeepEqual(skills, []string{"AWS", "Linux"}) {
		t.Fatalf("skills = %v; blank tags must be dropped", skills)
	}
}

func TestEntry_MissingFields(t *testing.T) {
	doc := mustDoc(t, samplePage)
	entries := entriesFromDoc(doc, DefaultSelectors())

	sparse := entries[1]
	if sparse.ID() != "91002" {
		t.Fatalf("ID = %q", sparse.ID())
	}
	if _, ok := sparse.Field(FieldRating); ok {
		t.Fatal("rating should be reported missing")
	}
	if _, ok := sparse.Field(FieldSalary); ok {
		t.Fatal("salary should be reported missing")
	}
	if skills := sparse.List(ListSkills); len(skills) != 0 {
		t.Fatalf("skills = %v, want none", skills)
	}
	if _, ok := sparse.Field("unknown"); ok {
		t.Fatal("unknown field name should be reported missing")
	}
}

func TestCurrentPageFromDoc(t *testing.T) {
	doc := mustDoc(t, samplePage)
	if got := currentPageFromDoc(doc, DefaultSelectors()); got != 2 {
		t.Fatalf("currentPageFromDoc = %d, want 2", got)
	}

	empty := mustDoc(t, "<html><body></body></html>")
	if got := currentPageFromDoc(empty, DefaultSelectors()); got != 0 {
		t.Fatalf("currentPageFromDoc(empty) = %d, want 0", got)
	}
}

func TestMaxPageFromDoc_PaginationLinks(t *testing.T) {
	doc := mustDoc(t, samplePage)
	if got := maxPageFromDoc(doc, DefaultSelectors()); got != 12 {
		t.Fatalf("maxPageFromDoc = %d, want 12", got)
	}
}

func TestMaxPageFromDoc_TotalAttribute(t *testing.T) {
	doc := mustDoc(t, `<html><body><div data-total-pages="37"></div></body></html>`)
	if got := maxPageFromDoc(doc, DefaultSelectors()); got != 37 {
		t.Fatalf("maxPageFromDoc = %d, want 37", got)
	}
}

func TestNewHTMLSource_PageFromURL(t *testing.T) {
	src, err := NewHTMLSource(nil, "https://example.com/jobs?pageNo=4", DefaultSelectors())
	if err != nil {
		t.Fatalf("NewHTMLSource failed: %v", err)
	}
	if src.CurrentPage() != 4 {
		t.Fatalf("CurrentPage = %d, want 4", src.CurrentPage())
	}

	src, err = NewHTMLSource(nil, "https://example.com/jobs", DefaultSelectors())
	if err != nil {
		t.Fatalf("NewHTMLSource failed: %v", err)
	}
	if src.CurrentPage() != 1 {
		t.Fatalf("CurrentPage = %d, want 1", src.CurrentPage())
	}
}
