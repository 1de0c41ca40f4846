package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jimezsa/jobsieve/internal/export"
	"github.com/jimezsa/jobsieve/internal/filter"
	"github.com/jimezsa/jobsieve/internal/ui"
)

// Fields kept internal to the run: the parsed date object and the derived
// search text are not part of the export schema.
var excludedJobFields = []string{"posted", "search_text"}

type FilterCmd struct {
	URL string `arg:"" help:"Search-results page URL."`
	FilterOptions
}

func (f *FilterCmd) Run(ctx *Context) error {
	cfg := resolveFilter(ctx, f.FilterOptions)

	src, err := newPageSource(f.URL, f.Proxies)
	if err != nil {
		return err
	}
	entries, err := src.Entries(context.Background())
	if err != nil {
		return err
	}

	view := ui.NewFilterView(ctx.UI)
	view.Summary(filter.SummaryLine(cfg))

	result := filter.Page(entries, cfg, time.Now(), ctx.Logger)
	for _, inst := range result.Instructions {
		view.Apply(inst)
	}

	if result.Skipped > 0 {
		ctx.UI.Warnf("Skipped %d unreadable entries", result.Skipped)
	}
	ctx.UI.Successf("Matched %d of %d jobs on page %d", len(result.Matched), result.Total, src.CurrentPage())

	if f.Output == "" && f.Format == "" && !ctx.JSONOutput {
		return nil
	}

	writer := ctx.Out
	path := f.Output
	if path == "" && !ctx.JSONOutput && f.Format != "table" {
		path = ctx.Config.ExportFilename
	}
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	err = export.WriteJobs(writer, result.Matched, resolveFormat(ctx, f.Format),
		exportWriteOptions(ctx, writer), excludedJobFields)
	if errors.Is(err, export.ErrNoRecords) {
		ctx.UI.Warnf("No matching jobs to export")
		return nil
	}
	if err != nil {
		return err
	}
	if path != "" {
		ctx.UI.Successf("Exported %d jobs to %s", len(result.Matched), path)
	}
	return nil
}
