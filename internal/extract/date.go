package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jimezsa/jobsieve/internal/models"
)

var relativeAgo = regexp.MustCompile(`(?i)(\d+)\s+(Day|Days|Month|Months)\s+Ago`)

// PostedDate converts relative posted-date text ("3 Days Ago") into an
// absolute date anchored at today. Unparseable text yields nil, not an
// error. Month subtraction uses calendar-month arithmetic, so the
// day-of-month may shift at month-length boundaries.
func PostedDate(raw string, today time.Time) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == models.Sentinel {
		return nil
	}

	lower := strings.ToLower(raw)
	if strings.Contains(lower, "just now") || strings.Contains(lower, "few hours ago") {
		date := today
		return &date
	}

	match := relativeAgo.FindStringSubmatch(raw)
	if match == nil {
		return nil
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}

	var date time.Time
	switch strings.ToLower(match[2]) {
	case "day", "days":
		date = today.AddDate(0, 0, -n)
	case "month", "months":
		date = today.AddDate(0, -n, 0)
	default:
		return nil
	}
	return &date
}
