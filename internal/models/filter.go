package models

import "time"

// FilterConfig is the set of user-controlled matching parameters for one
// filter pass or one full search. Callers treat a value as immutable for the
// duration of a run; updates produce a new value.
type FilterConfig struct {
	RequiredSkills []string
	MinRating      float64
	IncludeUnrated bool
	HideMismatches bool
	MaxPages       int
	PageDelay      time.Duration
}
