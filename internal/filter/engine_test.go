package filter

import (
	"reflect"
	"testing"
	"time"

	"github.com/jimezsa/jobsieve/internal/models"
	"github.com/jimezsa/jobsieve/internal/source"
	"github.com/rs/zerolog"
)

type stubEntry struct {
	id     string
	fields map[string]string
	skills []string
}

func (s *stubEntry) ID() string { return s.id }

func (s *stubEntry) Field(name string) (string, bool) {
	value, ok := s.fields[name]
	return value, ok
}

func (s *stubEntry) List(name string) []string {
	if name != source.ListSkills {
		return nil
	}
	return s.skills
}

func entry(id string, title string, rating string, skills ...string) *stubEntry {
	fields := map[string]string{
		source.FieldTitle:   title,
		source.FieldCompany: "Acme",
	}
	if rating != "" {
		fields[source.FieldRating] = rating
	}
	return &stubEntry{id: id, fields: fields, skills: skills}
}

func testPage() []source.Entry {
	return []source.Entry{
		entry("1", "Backend Engineer", "4.2", "aws", "linux"),
		entry("2", "Frontend Engineer", "4.0", "react"),
		entry("3", "Platform Engineer", "", "aws", "linux"),
	}
}

func TestPage_PartitionsAndAnnotates(t *testing.T) {
	cfg := models.FilterConfig{
		RequiredSkills: []string{"aws", "linux"},
		MinRating:      3.5,
		IncludeUnrated: true,
		HideMismatches: true,
	}

	result := Page(testPage(), cfg, time.Now(), zerolog.Nop())

	if result.Total != 3 || result.Skipped != 0 {
		t.Fatalf("unexpected totals: %+v", result)
	}
	if len(result.Matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(result.Matched))
	}
	if len(result.Instructions) != 3 {
		t.Fatalf("expected 3 instructions, got %d", len(result.Instructions))
	}

	first := result.Instructions[0]
	if first.Action != ActionHighlight {
		t.Fatalf("entry 1 action = %s, want highlight", first.Action)
	}
	if len(first.Annotations) != 1 || first.Annotations[0] != "Matched 2 skills" {
		t.Fatalf("entry 1 annotations = %v", first.Annotations)
	}

	if result.Instructions[1].Action != ActionHide {
		t.Fatalf("entry 2 action = %s, want hide", result.Instructions[1].Action)
	}

	third := result.Instructions[2]
	if third.Action != ActionHighlight {
		t.Fatalf("entry 3 action = %s, want highlight", third.Action)
	}
	if len(third.Annotations) != 2 || third.Annotations[1] != "No rating" {
		t.Fatalf("entry 3 annotations = %v", third.Annotations)
	}
}

func TestPage_ResetWhenNotHiding(t *testing.T) {
	cfg := models.FilterConfig{
		RequiredSkills: []string{"aws"},
		HideMismatches: false,
	}

	result := Page(testPage(), cfg, time.Now(), zerolog.Nop())

	if result.Instructions[1].Action != ActionReset {
		t.Fatalf("expected reset for visible mismatch, got %s", result.Instructions[1].Action)
	}
	if len(result.Instructions[1].Annotations) != 0 {
		t.Fatalf("reset instruction must not carry annotations: %v", result.Instructions[1].Annotations)
	}
}

func TestPage_Idempotent(t *testing.T) {
	cfg := models.FilterConfig{
		RequiredSkills: []string{"aws"},
		MinRating:      3.5,
		IncludeUnrated: true,
		HideMismatches: true,
	}
	entries := testPage()
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	first := Page(entries, cfg, today, zerolog.Nop())
	second := Page(entries, cfg, today, zerolog.Nop())

	if !reflect.DeepEqual(first.Matched, second.Matched) {
		t.Fatalf("matched sets differ between passes")
	}
	if !reflect.DeepEqual(first.Instructions, second.Instructions) {
		t.Fatalf("instruction sets differ between passes")
	}
}

func TestPage_SkipsUnusableEntries(t *testing.T) {
	entries := []source.Entry{
		&stubEntry{},
		entry("2", "Backend Engineer", "4.2", "aws"),
	}
	cfg := models.FilterConfig{RequiredSkills: []string{"aws"}}

	result := Page(entries, cfg, time.Now(), zerolog.Nop())

	if result.Skipped != 1 {
		t.Fatalf("Skipped = %d, want 1", result.Skipped)
	}
	if len(result.Matched) != 1 || result.Matched[0].ID != "2" {
		t.Fatalf("sibling entry should still match: %+v", result.Matched)
	}
	if len(result.Instructions) != 1 {
		t.Fatalf("skipped entries must not produce instructions, got %d", len(result.Instructions))
	}
}

func TestSummaryLine(t *testing.T) {
	got := SummaryLine(models.FilterConfig{
		RequiredSkills: []string{"aws", "linux"},
		MinRating:      3.5,
		IncludeUnrated: true,
	})
	want := "Skills: aws, linux, Min rating: 3.5 (including unrated)"
	if got != want {
		t.Fatalf("SummaryLine() = %q, want %q", got, want)
	}

	if got := SummaryLine(models.FilterConfig{}); got != "No skills filter" {
		t.Fatalf("SummaryLine(empty) = %q", got)
	}
}
