package tools

import (
	"strings"
	"testing"
	"time"

	"github.com/kweston/toggl-track-mcp/internal/toggl"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0:00"},
		{59, "0:01"}, // short entries never collapse to 0:00
		{60, "0:01"},
		{3600, "1:00"},
		{5400, "1:30"},
		{7200, "2:00"},
		{86400, "24:00"},
		{-1, "0:00"}, // running sentinel, defensive
	}

	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestResolveRange_Defaults(t *testing.T) {
	r, err := resolveRange("", "", 7)
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}

	today := time.Now().Format(dateLayout)
	if r.end.Format(dateLayout) != today {
		t.Errorf("end = %s, want today (%s)", r.end.Format(dateLayout), today)
	}
	wantStart := time.Now().AddDate(0, 0, -7).Format(dateLayout)
	if r.start.Format(dateLayout) != wantStart {
		t.Errorf("start = %s, want %s", r.start.Format(dateLayout), wantStart)
	}
}

func TestResolveRange_StartDerivedFromEnd(t *testing.T) {
	r, err := resolveRange("", "2025-03-31", 30)
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if got := r.start.Format(dateLayout); got != "2025-03-01" {
		t.Errorf("start = %s, want 2025-03-01", got)
	}
}

func TestResolveRange_Inverted(t *testing.T) {
	_, err := resolveRange("2025-03-10", "2025-03-01", 7)
	if err == nil {
		t.Fatal("expected an error for an inverted range")
	}
	if !strings.Contains(err.Error(), "after") {
		t.Errorf("error %q should explain that start is after end", err)
	}
}

func TestResolveRange_BadFormat(t *testing.T) {
	if _, err := resolveRange("03/10/2025", "", 7); err == nil {
		t.Error("expected an error for a non-ISO start date")
	}
	if _, err := resolveRange("", "next tuesday", 7); err == nil {
		t.Error("expected an error for a non-ISO end date")
	}
}

func TestDateRange_SingleDayAndContains(t *testing.T) {
	r, err := resolveRange("2025-03-05", "2025-03-05", 7)
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if !r.singleDay() {
		t.Error("range should be a single day")
	}

	inside := time.Date(2025, 3, 5, 23, 30, 0, 0, time.UTC)
	outside := time.Date(2025, 3, 6, 0, 30, 0, 0, time.UTC)
	if !r.contains(inside) {
		t.Error("23:30 on the day should be inside")
	}
	if r.contains(outside) {
		t.Error("the next day should be outside")
	}
}

func TestWriteEntryGroups_RunningExcludedFromTotals(t *testing.T) {
	day := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	entries := []toggl.TimeEntry{
		{ID: 1, Description: "Standup", Start: day, Duration: 1800, Stop: &day},
		{ID: 2, Description: "Deep work", Start: day.Add(time.Hour), Duration: -1},
	}

	var sb strings.Builder
	total := writeEntryGroups(&sb, entries, map[int64]string{})

	if total != 1800 {
		t.Errorf("total = %d, want 1800 (running entry excluded)", total)
	}
	out := sb.String()
	if !strings.Contains(out, "running") {
		t.Error("running entry should be listed as running")
	}
	if !strings.Contains(out, "Daily Total: 0:30") {
		t.Errorf("output should carry the 0:30 daily total:\n%s", out)
	}
}

func TestDisplayHelpers(t *testing.T) {
	if got := displayDescription("  "); got != "No description" {
		t.Errorf("blank description rendered as %q", got)
	}

	names := map[int64]string{7: "Ops"}
	id := int64(7)
	unknown := int64(99)
	if got := displayProject(&id, names); got != "Ops" {
		t.Errorf("displayProject = %q, want Ops", got)
	}
	if got := displayProject(nil, names); got != "No project" {
		t.Errorf("displayProject(nil) = %q, want No project", got)
	}
	if got := displayProject(&unknown, names); got != "No project" {
		t.Errorf("displayProject(unknown) = %q, want No project", got)
	}
}
