package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jimezsa/jobsieve/internal/extract"
	"github.com/jimezsa/jobsieve/internal/models"
	"github.com/jimezsa/jobsieve/internal/source"
	"github.com/rs/zerolog"
)

// Action tells the presentation layer what to do with one entry.
type Action string

const (
	ActionHighlight Action = "highlight"
	ActionHide      Action = "hide"
	ActionReset     Action = "reset"
)

// Instruction is the per-entry outcome of a filter pass. Annotations are
// recomputed on every pass, never accumulated.
type Instruction struct {
	Index       int
	EntryID     string
	Title       string
	Company     string
	Action      Action
	Annotations []string
}

// Sink consumes instructions and the filter summary. It only consumes; it
// never feeds data back into filtering.
type Sink interface {
	Apply(inst Instruction)
	Summary(text string)
}

// PageResult is the outcome of one filter pass over a page.
type PageResult struct {
	Matched      []models.Job
	Instructions []Instruction
	Total        int
	Skipped      int
}

// Page applies cfg to every entry of the current page. Entries that fail
// extraction are logged and skipped without affecting their siblings.
// Running the pass again over unchanged content produces the same matched
// set and the same instruction set.
func Page(entries []source.Entry, cfg models.FilterConfig, today time.Time, logger zerolog.Logger) PageResult {
	result := PageResult{Total: len(entries)}

	for i, entry := range entries {
		job, err := extract.Record(entry, today)
		if err != nil {
			result.Skipped++
			logger.Warn().Err(err).Int("entry", i).Msg("skipping listing entry")
			continue
		}

		inst := Instruction{Index: i, EntryID: job.ID, Title: job.Title, Company: job.Company}
		switch {
		case Matches(job, cfg):
			inst.Action = ActionHighlight
			inst.Annotations = append(inst.Annotations,
				fmt.Sprintf("Matched %d skills", len(cfg.RequiredSkills)))
			if job.Rating == nil && cfg.MinRating > 0 {
				inst.Annotations = append(inst.Annotations, "No rating")
			}
			result.Matched = append(result.Matched, job)
		case cfg.HideMismatches:
			inst.Action = ActionHide
		default:
			inst.Action = ActionReset
		}
		result.Instructions = append(result.Instructions, inst)
	}

	return result
}

// SummaryLine describes the active filters for display.
func SummaryLine(cfg models.FilterConfig) string {
	var parts []string
	if len(cfg.RequiredSkills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(cfg.RequiredSkills, ", "))
	} else {
		parts = append(parts, "No skills filter")
	}
	if cfg.MinRating > 0 {
		unrated := "excluding"
		if cfg.IncludeUnrated {
			unrated = "including"
		}
		parts = append(parts, fmt.Sprintf("Min rating: %.1f (%s unrated)", cfg.MinRating, unrated))
	}
	return strings.Join(parts, ", ")
}
