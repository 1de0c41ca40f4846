package extract

import (
	"testing"
	"time"
)

func TestPostedDate_RelativeDays(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	got := PostedDate("3 Days Ago", today)
	if got == nil {
		t.Fatalf("expected a date for %q", "3 Days Ago")
	}
	want := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("PostedDate(3 Days Ago) = %s, want %s", got, want)
	}
}

func TestPostedDate_Table(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		raw  string
		want *time.Time
	}{
		{"", nil},
		{"N/A", nil},
		{"yesterday", nil},
		{"Posted recently", nil},
		{"Just Now", &today},
		{"few hours ago", &today},
		{"1 Day Ago", datePtr(2024, 6, 9)},
		{"30 days ago", datePtr(2024, 5, 11)},
		{"1 Month Ago", datePtr(2024, 5, 10)},
		{"2 Months Ago", datePtr(2024, 4, 10)},
	}

	for _, tc := range cases {
		got := PostedDate(tc.raw, today)
		if tc.want == nil {
			if got != nil {
				t.Fatalf("PostedDate(%q) = %s, want nil", tc.raw, got)
			}
			continue
		}
		if got == nil {
			t.Fatalf("PostedDate(%q) = nil, want %s", tc.raw, tc.want)
		}
		if !got.Equal(*tc.want) {
			t.Fatalf("PostedDate(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestPostedDate_MonthBoundaryNormalizes(t *testing.T) {
	// Calendar-month subtraction from a long month may land past the end of
	// the shorter month; the date normalizes forward instead of clamping.
	today := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	got := PostedDate("1 Month Ago", today)
	if got == nil {
		t.Fatalf("expected a date")
	}
	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("PostedDate(1 Month Ago from %s) = %s, want %s", today, got, want)
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &date
}
