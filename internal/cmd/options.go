package cmd

import (
	"io"
	"strings"
	"time"

	"github.com/jimezsa/jobsieve/internal/config"
	"github.com/jimezsa/jobsieve/internal/export"
	"github.com/jimezsa/jobsieve/internal/models"
	"github.com/jimezsa/jobsieve/internal/network"
	"github.com/jimezsa/jobsieve/internal/source"
	"github.com/muesli/termenv"
)

// FilterOptions are the matching flags shared by the filter and search
// commands. Pointer-typed flags distinguish "not given" from an explicit
// zero so config-file defaults can fill the gaps.
type FilterOptions struct {
	Skills         string   `help:"Required skills (comma separated)."`
	MinRating      *float64 `help:"Minimum company rating; 0 disables the threshold."`
	IncludeUnrated *bool    `help:"Keep jobs with no published rating when a threshold is set."`
	HideMismatches *bool    `help:"Hide non-matching entries in the terminal view."`
	Proxies        string   `help:"Comma-separated proxy URLs." env:"JOBSIEVE_PROXIES"`
	Output         string   `name:"output" short:"o" help:"Write the export to a file."`
	Format         string   `help:"Export format: table, csv, json." enum:",table,csv,json" default:""`
}

func resolveFilter(ctx *Context, opts FilterOptions) models.FilterConfig {
	cfg := ctx.Config
	resolved := models.FilterConfig{
		RequiredSkills: append([]string{}, cfg.RequiredSkills...),
		MinRating:      cfg.MinRating,
		IncludeUnrated: cfg.IncludeUnrated,
		HideMismatches: cfg.HideMismatches,
		MaxPages:       cfg.MaxPages,
		PageDelay:      time.Duration(cfg.PageDelayMS) * time.Millisecond,
	}

	if strings.TrimSpace(opts.Skills) != "" {
		resolved.RequiredSkills = splitSkills(opts.Skills)
	}
	if opts.MinRating != nil {
		resolved.MinRating = *opts.MinRating
	}
	if resolved.MinRating < 0 {
		resolved.MinRating = 0
	}
	if opts.IncludeUnrated != nil {
		resolved.IncludeUnrated = *opts.IncludeUnrated
	}
	if opts.HideMismatches != nil {
		resolved.HideMismatches = *opts.HideMismatches
	}
	return resolved
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		skills = append(skills, part)
	}
	return skills
}

func newPageSource(rawURL string, proxiesFlag string) (*source.HTMLSource, error) {
	proxies, err := config.LoadProxies(proxiesFlag)
	if err != nil {
		return nil, err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return nil, err
		}
	}

	client, err := network.NewClient(rotator)
	if err != nil {
		return nil, err
	}
	return source.NewHTMLSource(client, rawURL, source.DefaultSelectors())
}

func resolveFormat(ctx *Context, flag string) export.Format {
	if ctx.JSONOutput {
		return export.FormatJSON
	}
	if flag != "" {
		return export.Format(strings.ToLower(strings.TrimSpace(flag)))
	}
	return export.FormatCSV
}

func exportWriteOptions(ctx *Context, w io.Writer) export.WriteOptions {
	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled && w == ctx.Out
	return export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(w),
	}
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
