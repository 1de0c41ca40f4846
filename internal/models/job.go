package models

import (
	"strings"
	"time"
)

// Sentinel fills string fields the source did not provide.
const Sentinel = "N/A"

// Job is the normalized listing entry produced by the extractor.
// Rating and Posted are nil when the source publishes nothing parseable;
// identifier uniqueness is not guaranteed by the source.
type Job struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Company     string     `json:"company"`
	Rating      *float64   `json:"rating"`
	Experience  string     `json:"experience,omitempty"`
	Salary      string     `json:"salary,omitempty"`
	Location    string     `json:"location,omitempty"`
	Skills      []string   `json:"skills,omitempty"`
	Description string     `json:"description,omitempty"`
	PostedRaw   string     `json:"posted_raw,omitempty"`
	Posted      *time.Time `json:"posted,omitempty"`
}

// SearchText is the sole surface searched for required skills: lowercased
// description plus lowercased skill tags. Computed on demand so it can never
// go stale against Description or Skills.
func (j Job) SearchText() string {
	return strings.ToLower(j.Description) + " " + strings.ToLower(strings.Join(j.Skills, " "))
}

// Collected is the simplified record appended to the result set during a
// multi-page run.
type Collected struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Rating    *float64 `json:"rating"`
	Link      string   `json:"link"`
	PageFound int      `json:"page_found"`
}

// Simplify projects a full record down to the collected form, tagged with the
// page it was found on.
func Simplify(job Job, page int) Collected {
	return Collected{
		ID:        job.ID,
		Title:     job.Title,
		Company:   job.Company,
		Rating:    job.Rating,
		Link:      job.Link,
		PageFound: page,
	}
}
