package cmd

import (
	"reflect"
	"testing"
	"time"

	"github.com/jimezsa/jobsieve/internal/config"
	"github.com/jimezsa/jobsieve/internal/export"
)

func testContext() *Context {
	return &Context{
		Config: config.Config{
			RequiredSkills: []string{"aws", "linux"},
			MinRating:      3.5,
			IncludeUnrated: true,
			HideMismatches: true,
			MaxPages:       50,
			PageDelayMS:    3000,
		},
	}
}

func TestSplitSkills(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"aws,linux", []string{"aws", "linux"}},
		{" aws , linux ", []string{"aws", "linux"}},
		{"aws,,linux,", []string{"aws", "linux"}},
		{"", []string{}},
	}
	for _, tc := range cases {
		if got := splitSkills(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitSkills(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestResolveFilter_ConfigDefaults(t *testing.T) {
	resolved := resolveFilter(testContext(), FilterOptions{})

	if !reflect.DeepEqual(resolved.RequiredSkills, []string{"aws", "linux"}) {
		t.Fatalf("skills = %v", resolved.RequiredSkills)
	}
	if resolved.MinRating != 3.5 || !resolved.IncludeUnrated || !resolved.HideMismatches {
		t.Fatalf("unexpected resolved config: %+v", resolved)
	}
	if resolved.PageDelay != 3*time.Second {
		t.Fatalf("page delay = %s, want 3s", resolved.PageDelay)
	}
}

func TestResolveFilter_FlagOverrides(t *testing.T) {
	minRating := 0.0
	includeUnrated := false
	resolved := resolveFilter(testContext(), FilterOptions{
		Skills:         "kubernetes",
		MinRating:      &minRating,
		IncludeUnrated: &includeUnrated,
	})

	if !reflect.DeepEqual(resolved.RequiredSkills, []string{"kubernetes"}) {
		t.Fatalf("skills = %v, want flag value to replace config", resolved.RequiredSkills)
	}
	if resolved.MinRating != 0 {
		t.Fatalf("explicit zero must disable the threshold, got %v", resolved.MinRating)
	}
	if resolved.IncludeUnrated {
		t.Fatal("explicit false must override the config default")
	}
	if !resolved.HideMismatches {
		t.Fatal("unset flag must keep the config default")
	}
}

func TestResolveFilter_NegativeRatingClamps(t *testing.T) {
	minRating := -2.0
	resolved := resolveFilter(testContext(), FilterOptions{MinRating: &minRating})
	if resolved.MinRating != 0 {
		t.Fatalf("negative threshold must clamp to 0, got %v", resolved.MinRating)
	}
}

func TestResolveFormat(t *testing.T) {
	if got := resolveFormat(&Context{JSONOutput: true}, "csv"); got != export.FormatJSON {
		t.Fatalf("json mode must win, got %s", got)
	}
	if got := resolveFormat(&Context{}, " Table "); got != export.FormatTable {
		t.Fatalf("flag should normalize, got %s", got)
	}
	if got := resolveFormat(&Context{}, ""); got != export.FormatCSV {
		t.Fatalf("default format = %s, want csv", got)
	}
}
