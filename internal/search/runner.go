package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jimezsa/jobsieve/internal/filter"
	"github.com/jimezsa/jobsieve/internal/models"
	"github.com/jimezsa/jobsieve/internal/source"
	"github.com/rs/zerolog"
)

// ErrAlreadyRunning is returned for a start request while a run is active.
// The active run and its result set are left untouched.
var ErrAlreadyRunning = errors.New("search already in progress")

// State of the run loop.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateFiltering
	StateAdvancing
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFiltering:
		return "filtering"
	case StateAdvancing:
		return "advancing"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Summary reports one finished run.
type Summary struct {
	Collected int
	Pages     int
	StartPage int
}

// Runner drives a page-by-page search: filter the current page, collect the
// matches, advance, wait out the pacing delay, and repeat until the page
// bound or a navigation failure. At most one run is active per Runner; the
// collected set belongs to that run and is handed back exactly once.
type Runner struct {
	src    source.Source
	sink   filter.Sink
	logger zerolog.Logger

	now   func() time.Time
	sleep func(time.Duration)

	mu      sync.Mutex
	running bool
	state   atomic.Int32
}

func NewRunner(src source.Source, sink filter.Sink, logger zerolog.Logger) *Runner {
	return &Runner{
		src:    src,
		sink:   sink,
		logger: logger,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

func (r *Runner) State() State {
	return State(r.state.Load())
}

// Run executes one full search. The pacing delay between page advances is
// fixed: the source's content update after navigation is asynchronous and
// unsignaled, so the delay is a pacing wait, not a bounded wait-for-
// condition.
func (r *Runner) Run(ctx context.Context, cfg models.FilterConfig) ([]models.Collected, Summary, error) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil, Summary{}, ErrAlreadyRunning
	}
	r.running = true
	r.mu.Unlock()

	r.setState(StateRunning)
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		r.setState(StateIdle)
	}()

	maxPages := cfg.MaxPages
	if maxPages < 1 {
		maxPages = 1
	}

	page := r.src.CurrentPage()
	start := page
	pages := 0
	var collected []models.Collected

	if r.sink != nil {
		r.sink.Summary(filter.SummaryLine(cfg))
	}

	for {
		r.setState(StateFiltering)
		r.logger.Info().Int("page", page).Int("max", maxPages).Msg("searching page")

		entries, err := r.src.Entries(ctx)
		if err != nil {
			if pages == 0 {
				return nil, Summary{}, fmt.Errorf("search: read page %d: %w", page, err)
			}
			r.logger.Warn().Err(err).Int("page", page).Msg("page read failed, ending run")
			break
		}
		pages++

		result := filter.Page(entries, cfg, r.now(), r.logger)
		if r.sink != nil {
			for _, inst := range result.Instructions {
				r.sink.Apply(inst)
			}
		}
		for _, job := range result.Matched {
			collected = append(collected, models.Simplify(job, page))
		}
		r.logger.Info().
			Int("page", page).
			Int("matched", len(result.Matched)).
			Int("entries", result.Total).
			Int("collected", len(collected)).
			Msg("page filtered")

		if page >= maxPages {
			break
		}

		r.setState(StateAdvancing)
		if !r.src.Advance(ctx) {
			r.logger.Info().Int("page", page).Msg("no further pages")
			break
		}
		r.sleep(cfg.PageDelay)
		page++
	}

	r.setState(StateFinished)
	return collected, Summary{Collected: len(collected), Pages: pages, StartPage: start}, nil
}

func (r *Runner) setState(next State) {
	r.state.Store(int32(next))
	r.logger.Debug().Stringer("state", next).Msg("search state")
}
