package source

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/jobsieve/internal/network"
)

// Selectors locates listing data inside a search-results page.
type Selectors struct {
	Card        string
	IDAttr      string
	Title       string
	Company     string
	Rating      string
	Experience  string
	Salary      string
	SalaryAttr  string
	Location    string
	Skills      string
	Description string
	Posted      string
	CurrentPage string
	PageLinks   string
	TotalPages  string
	TotalAttr   string
}

// DefaultSelectors matches the listing markup of the supported job board.
func DefaultSelectors() Selectors {
	return Selectors{
		Card:        ".srp-jobtuple-wrapper",
		IDAttr:      "data-job-id",
		Title:       ".title",
		Company:     ".comp-name",
		Rating:      ".rating .main-2",
		Experience:  ".exp-wrap .expwdth",
		Salary:      ".sal-wrap span[title]",
		SalaryAttr:  "title",
		Location:    ".loc-wrap .locWdth",
		Skills:      ".tags-gt .tag-li",
		Description: ".job-desc",
		Posted:      ".job-post-day",
		CurrentPage: ".styles_selected__j3uvq",
		PageLinks:   ".styles_pages__v1rAK a",
		TotalPages:  "[data-total-pages]",
		TotalAttr:   "data-total-pages",
	}
}

const pageParam = "pageNo"

// HTMLSource serves listing entries from a paginated HTML search-results
// page. Advancing fetches the next page over HTTP; the caller still owns the
// pacing between advances.
type HTMLSource struct {
	client *network.Client
	base   *url.URL
	sel    Selectors
	page   int
	doc    *goquery.Document
}

func NewHTMLSource(client *network.Client, rawURL string, sel Selectors) (*HTMLSource, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("source: parse url: %w", err)
	}
	page := 1
	if v := base.Query().Get(pageParam); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	return &HTMLSource{client: client, base: base, sel: sel, page: page}, nil
}

func (s *HTMLSource) Entries(ctx context.Context) ([]Entry, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	return entriesFromDoc(s.doc, s.sel), nil
}

func (s *HTMLSource) CurrentPage() int {
	if s.doc != nil {
		if page := currentPageFromDoc(s.doc, s.sel); page > 0 {
			return page
		}
	}
	return s.page
}

func (s *HTMLSource) MaxPage() int {
	if s.doc == nil {
		return 1
	}
	return maxPageFromDoc(s.doc, s.sel)
}

func (s *HTMLSource) Advance(ctx context.Context) bool {
	doc, err := s.fetch(ctx, s.page+1)
	if err != nil {
		return false
	}
	if doc.Find(s.sel.Card).Length() == 0 {
		return false
	}
	s.doc = doc
	s.page++
	return true
}

func (s *HTMLSource) ensure(ctx context.Context) error {
	if s.doc != nil {
		return nil
	}
	doc, err := s.fetch(ctx, s.page)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

func (s *HTMLSource) fetch(ctx context.Context, page int) (*goquery.Document, error) {
	target := *s.base
	query := target.Query()
	if page > 1 || query.Get(pageParam) != "" {
		query.Set(pageParam, strconv.Itoa(page))
	}
	target.RawQuery = query.Encode()

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("accept-language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("source: http %d", resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

func entriesFromDoc(doc *goquery.Document, sel Selectors) []Entry {
	var entries []Entry
	doc.Find(sel.Card).Each(func(_ int, card *goquery.Selection) {
		entries = append(entries, &htmlEntry{card: card, sel: sel})
	})
	return entries
}

func currentPageFromDoc(doc *goquery.Document, sel Selectors) int {
	text := cleanText(doc.Find(sel.CurrentPage).First().Text())
	page, err := strconv.Atoi(text)
	if err != nil || page < 1 {
		return 0
	}
	return page
}

func maxPageFromDoc(doc *goquery.Document, sel Selectors) int {
	if raw, ok := doc.Find(sel.TotalPages).First().Attr(sel.TotalAttr); ok {
		if total, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && total > 0 {
			return total
		}
	}

	max := 1
	doc.Find(sel.PageLinks).Each(func(_ int, link *goquery.Selection) {
		if page, err := strconv.Atoi(cleanText(link.Text())); err == nil && page > max {
			max = page
		}
	})
	return max
}

type htmlEntry struct {
	card *goquery.Selection
	sel  Selectors
}

func (e *htmlEntry) ID() string {
	return strings.TrimSpace(e.card.AttrOr(e.sel.IDAttr, ""))
}

func (e *htmlEntry) Field(name string) (string, bool) {
	switch name {
	case FieldTitle:
		return e.text(e.sel.Title)
	case FieldLink:
		link := e.card.Find(e.sel.Title).First()
		if link.Length() == 0 {
			return "", false
		}
		href, ok := link.Attr("href")
		return strings.TrimSpace(href), ok
	case FieldCompany:
		return e.text(e.sel.Company)
	case FieldRating:
		return e.text(e.sel.Rating)
	case FieldExperience:
		return e.text(e.sel.Experience)
	case FieldSalary:
		el := e.card.Find(e.sel.Salary).First()
		if el.Length() == 0 {
			return "", false
		}
		value, ok := el.Attr(e.sel.SalaryAttr)
		return strings.TrimSpace(value), ok
	case FieldLocation:
		return e.text(e.sel.Location)
	case FieldDescription:
		return e.text(e.sel.Description)
	case FieldPosted:
		return e.text(e.sel.Posted)
	default:
		return "", false
	}
}

func (e *htmlEntry) List(name string) []string {
	if name != ListSkills {
		return nil
	}
	var items []string
	e.card.Find(e.sel.Skills).Each(func(_ int, tag *goquery.Selection) {
		if item := cleanText(tag.Text()); item != "" {
			items = append(items, item)
		}
	})
	return items
}

func (e *htmlEntry) text(selector string) (string, bool) {
	el := e.card.Find(selector).First()
	if el.Length() == 0 {
		return "", false
	}
	return cleanText(el.Text()), true
}

func cleanText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
