package cmd

import (
	"context"
	"os"
	"time"

	"github.com/jimezsa/jobsieve/internal/export"
	"github.com/jimezsa/jobsieve/internal/filter"
	"github.com/jimezsa/jobsieve/internal/search"
	"github.com/jimezsa/jobsieve/internal/ui"
)

// Full-search results always land in the same file unless redirected.
const fullSearchFilename = "full_search_results.csv"

type SearchCmd struct {
	URL string `arg:"" help:"First search-results page URL."`
	FilterOptions
	MaxPages int           `help:"Maximum number of pages to search."`
	Delay    time.Duration `help:"Delay between page transitions."`
}

func (s *SearchCmd) Run(ctx *Context) error {
	cfg := resolveFilter(ctx, s.FilterOptions)
	if s.MaxPages > 0 {
		cfg.MaxPages = s.MaxPages
	}
	if s.Delay > 0 {
		cfg.PageDelay = s.Delay
	}

	src, err := newPageSource(s.URL, s.Proxies)
	if err != nil {
		return err
	}

	var sink filter.Sink
	if !ctx.JSONOutput {
		sink = ui.NewFilterView(ctx.UI)
	}

	runner := search.NewRunner(src, sink, ctx.Logger)
	collected, summary, err := runner.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	if len(collected) == 0 {
		ctx.UI.Warnf("No matching jobs were found across %d pages", summary.Pages)
		return nil
	}

	writer := ctx.Out
	path := s.Output
	if path == "" && !ctx.JSONOutput && s.Format != "table" {
		path = fullSearchFilename
	}
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	if err := export.WriteCollected(writer, collected, resolveFormat(ctx, s.Format),
		exportWriteOptions(ctx, writer)); err != nil {
		return err
	}

	if path != "" {
		ctx.UI.Successf("Found %d matching jobs across %d pages; exported to %s",
			summary.Collected, summary.Pages, path)
	} else {
		ctx.UI.Successf("Found %d matching jobs across %d pages", summary.Collected, summary.Pages)
	}
	return nil
}
