package extract

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jimezsa/jobsieve/internal/models"
	"github.com/jimezsa/jobsieve/internal/source"
)

// ErrUnusableEntry marks an entry that exposes neither a title nor an
// identifier. The caller skips the entry; siblings are unaffected.
var ErrUnusableEntry = errors.New("extract: entry has no title or identifier")

// Record converts one listing entry into a normalized Job. Field access is
// defensive: a missing sub-element degrades to the "N/A" sentinel (or nil
// for rating and date) instead of failing the entry.
func Record(entry source.Entry, today time.Time) (models.Job, error) {
	if entry == nil {
		return models.Job{}, ErrUnusableEntry
	}

	job := models.Job{
		ID:         orSentinel(entry.ID()),
		Title:      fieldOr(entry, source.FieldTitle),
		Link:       fieldOr(entry, source.FieldLink),
		Company:    fieldOr(entry, source.FieldCompany),
		Experience: fieldOr(entry, source.FieldExperience),
		Salary:     fieldOr(entry, source.FieldSalary),
		Location:   fieldOr(entry, source.FieldLocation),
		Skills:     entry.List(source.ListSkills),
		PostedRaw:  fieldOr(entry, source.FieldPosted),
	}
	if desc, ok := entry.Field(source.FieldDescription); ok {
		job.Description = strings.TrimSpace(desc)
	}
	job.Posted = PostedDate(job.PostedRaw, today)
	job.Rating = rating(entry)

	if job.Title == models.Sentinel && job.ID == models.Sentinel {
		return models.Job{}, ErrUnusableEntry
	}
	return job, nil
}

// rating parses the published rating. The sentinel, malformed text, and
// out-of-range values all degrade to nil ("no rating published").
func rating(entry source.Entry) *float64 {
	text, ok := entry.Field(source.FieldRating)
	if !ok {
		return nil
	}
	text = strings.TrimSpace(text)
	if text == "" || text == models.Sentinel {
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || value < 0 || value > 5 {
		return nil
	}
	return &value
}

func fieldOr(entry source.Entry, name string) string {
	value, _ := entry.Field(name)
	return orSentinel(value)
}

func orSentinel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.Sentinel
	}
	return value
}
