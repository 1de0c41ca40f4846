package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jimezsa/jobsieve/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ErrNoRecords reports an empty export set. Callers surface it as a notice,
// not a failure; it is distinct from a write error.
var ErrNoRecords = errors.New("no records to export")

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
}

// Field is one named value of an exported record.
type Field struct {
	Name  string
	Value any
}

// JobFields flattens a full record for export. The derived search text and
// the parsed date are included so callers can exclude them explicitly.
func JobFields(job models.Job) []Field {
	posted := ""
	if job.Posted != nil {
		posted = job.Posted.Format("2006-01-02")
	}
	return []Field{
		{"id", job.ID},
		{"title", job.Title},
		{"link", job.Link},
		{"company", job.Company},
		{"rating", job.Rating},
		{"experience", job.Experience},
		{"salary", job.Salary},
		{"location", job.Location},
		{"skills", job.Skills},
		{"description", job.Description},
		{"posted_raw", job.PostedRaw},
		{"posted", posted},
		{"search_text", job.SearchText()},
	}
}

func CollectedFields(record models.Collected) []Field {
	return []Field{
		{"id", record.ID},
		{"title", record.Title},
		{"company", record.Company},
		{"rating", record.Rating},
		{"link", record.Link},
		{"page_found", record.PageFound},
	}
}

// WriteCollected writes the aggregated result set of a full search.
func WriteCollected(w io.Writer, records []models.Collected, format Format, opts WriteOptions) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, records)
	case FormatTable:
		return writeCollectedTable(w, records, opts)
	default:
		rows := make([][]Field, 0, len(records))
		for _, record := range records {
			rows = append(rows, CollectedFields(record))
		}
		return WriteCSV(w, rows, nil)
	}
}

// WriteJobs writes full records, excluding the named fields on the CSV path.
func WriteJobs(w io.Writer, jobs []models.Job, format Format, opts WriteOptions, exclude []string) error {
	if len(jobs) == 0 {
		return ErrNoRecords
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, jobs)
	case FormatTable:
		return writeJobTable(w, jobs, opts)
	default:
		rows := make([][]Field, 0, len(jobs))
		for _, job := range jobs {
			rows = append(rows, JobFields(job))
		}
		return WriteCSV(w, rows, exclude)
	}
}

// WriteCSV writes rows under a header that is the union of field names
// across all rows, in first-seen order. Every value is quote-wrapped with
// embedded quotes doubled, sequence values are flattened with "; ", and a
// field missing from a row renders as an empty string.
func WriteCSV(w io.Writer, rows [][]Field, exclude []string) error {
	if len(rows) == 0 {
		return ErrNoRecords
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	var header []string
	seen := map[string]struct{}{}
	for _, row := range rows {
		for _, field := range row {
			if _, skip := excluded[field.Name]; skip {
				continue
			}
			if _, ok := seen[field.Name]; ok {
				continue
			}
			seen[field.Name] = struct{}{}
			header = append(header, field.Name)
		}
	}

	if _, err := fmt.Fprintln(w, strings.Join(header, ",")); err != nil {
		return err
	}

	for _, row := range rows {
		values := make(map[string]any, len(row))
		for _, field := range row {
			values[field.Name] = field.Value
		}

		cells := make([]string, 0, len(header))
		for _, name := range header {
			value, ok := values[name]
			if !ok {
				cells = append(cells, quote(""))
				continue
			}
			cells = append(cells, quote(stringify(value)))
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, ",")); err != nil {
			return err
		}
	}
	return nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, "; ")
	case *float64:
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'g', -1, 64)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func writeJSON(w io.Writer, records any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeCollectedTable(w io.Writer, records []models.Collected, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\ttitle\tcompany\trating\tpage\tlink")
	output := termenv.NewOutput(w)
	for _, record := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			record.ID,
			record.Title,
			record.Company,
			ratingLabel(record.Rating),
			record.PageFound,
			linkCell(output, opts, record.Link),
		)
	}
	return tw.Flush()
}

func writeJobTable(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "title\tcompany\trating\tlocation\tlink")
	output := termenv.NewOutput(w)
	for _, job := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			job.Title,
			job.Company,
			ratingLabel(job.Rating),
			job.Location,
			linkCell(output, opts, job.Link),
		)
	}
	return tw.Flush()
}

func ratingLabel(rating *float64) string {
	if rating == nil {
		return "-"
	}
	return strconv.FormatFloat(*rating, 'g', -1, 64)
}

func linkCell(output *termenv.Output, opts WriteOptions, link string) string {
	const linkColor = "#87CEEB"

	link = strings.TrimSpace(link)
	if link == "" || link == models.Sentinel {
		return "-"
	}
	display := link
	if opts.ColorEnabled {
		display = output.String(display).Foreground(output.Color(linkColor)).String()
	}
	if opts.Hyperlinks {
		display = hyperlink(link, display)
	}
	return display
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}
