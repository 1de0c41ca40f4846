package filter

import (
	"strings"

	"github.com/jimezsa/jobsieve/internal/models"
)

// Matches reports whether job satisfies cfg. Pure function, no side effects.
//
// A rating threshold of 0 disables rating checks entirely. With a threshold
// active, a known rating below the threshold rejects, and an unknown rating
// rejects unless IncludeUnrated is set. Every required skill must appear in
// the job's combined search text.
func Matches(job models.Job, cfg models.FilterConfig) bool {
	if cfg.MinRating > 0 && job.Rating != nil && *job.Rating < cfg.MinRating {
		return false
	}
	if cfg.MinRating > 0 && job.Rating == nil && !cfg.IncludeUnrated {
		return false
	}
	return hasAllSkills(job, cfg.RequiredSkills)
}

// hasAllSkills checks every required skill against the combined description
// and skill-tag text. Matching is case-insensitive substring containment,
// not word-boundary matching: a required "go" matches inside "mongodb".
func hasAllSkills(job models.Job, required []string) bool {
	if len(required) == 0 {
		return true
	}

	text := job.SearchText()
	for _, skill := range required {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle == "" {
			continue
		}
		if !strings.Contains(text, needle) {
			return false
		}
	}
	return true
}
