package source

import "context"

// Entry is one opaque listing entry owned by a page source. Field returns the
// text of a labeled sub-element and whether it was present; List returns the
// items of a labeled sub-list. Missing labels are reported, never faulted.
type Entry interface {
	ID() string
	Field(name string) (string, bool)
	List(name string) []string
}

// Labels understood by entry implementations.
const (
	FieldTitle       = "title"
	FieldLink        = "link"
	FieldCompany     = "company"
	FieldRating      = "rating"
	FieldExperience  = "experience"
	FieldSalary      = "salary"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldPosted      = "posted"
	ListSkills       = "skills"
)

// Source serves listing entries page by page. Entry count and ordering are
// not fixed across navigation events.
type Source interface {
	// Entries returns the current page's listing entries in page order.
	Entries(ctx context.Context) ([]Entry, error)

	// CurrentPage is the page number the source currently reports.
	CurrentPage() int

	// MaxPage is the highest page number discoverable from the source,
	// defaulting to 1 when nothing is discoverable.
	MaxPage() int

	// Advance attempts to move to the next page and reports whether a page
	// transition was initiated. It does not guarantee the next page's
	// content has settled by the time it returns.
	Advance(ctx context.Context) bool
}
