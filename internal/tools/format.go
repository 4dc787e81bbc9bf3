package tools

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kweston/toggl-track-mcp/internal/toggl"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "2006-01-02 15:04"
)

// formatDuration renders seconds as H:MM. Minutes round up, so a short
// completed entry never collapses to 0:00.
func formatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := (seconds + 59) / 60
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// formatClock renders a timestamp as "YYYY-MM-DD HH:MM" in the
// timestamp's own zone.
func formatClock(t time.Time) string {
	return t.Format(clockLayout)
}

// dateRange is an inclusive range of calendar dates.
type dateRange struct {
	start time.Time
	end   time.Time
}

func (r dateRange) String() string {
	return fmt.Sprintf("%s to %s", r.start.Format(dateLayout), r.end.Format(dateLayout))
}

func (r dateRange) singleDay() bool {
	return r.start.Format(dateLayout) == r.end.Format(dateLayout)
}

// contains reports whether the entry's local calendar date falls in
// the range. Comparison is on formatted dates, so the zones of the
// bounds and the timestamp don't interact.
func (r dateRange) contains(t time.Time) bool {
	d := t.Format(dateLayout)
	return d >= r.start.Format(dateLayout) && d <= r.end.Format(dateLayout)
}

// resolveRange parses optional YYYY-MM-DD bounds, filling in defaults:
// a missing end is today, a missing start is defaultDays before the
// end. An inverted range is rejected here so the API is never queried
// with one.
func resolveRange(startArg, endArg string, defaultDays int) (dateRange, error) {
	var r dateRange

	if endArg == "" {
		now := time.Now()
		r.end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	} else {
		end, err := time.Parse(dateLayout, endArg)
		if err != nil {
			return r, fmt.Errorf("invalid end_date %q: expected YYYY-MM-DD", endArg)
		}
		r.end = end
	}

	if startArg == "" {
		r.start = r.end.AddDate(0, 0, -defaultDays)
	} else {
		start, err := time.Parse(dateLayout, startArg)
		if err != nil {
			return r, fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", startArg)
		}
		r.start = start
	}

	if r.start.Format(dateLayout) > r.end.Format(dateLayout) {
		return r, fmt.Errorf("start_date %s is after end_date %s; swap the dates and try again",
			r.start.Format(dateLayout), r.end.Format(dateLayout))
	}

	return r, nil
}

// projectNameIndex maps project ids to names for display.
func projectNameIndex(projects []toggl.Project) map[int64]string {
	index := make(map[int64]string, len(projects))
	for _, p := range projects {
		index[p.ID] = p.Name
	}
	return index
}

// displayProject resolves an optional project id to a display name,
// falling back to "No project" when absent or unresolvable.
func displayProject(projectID *int64, names map[int64]string) string {
	if projectID == nil {
		return "No project"
	}
	if name, ok := names[*projectID]; ok {
		return name
	}
	return "No project"
}

// displayDescription never renders an empty description.
func displayDescription(desc string) string {
	if strings.TrimSpace(desc) == "" {
		return "No description"
	}
	return desc
}

// writeEntryGroups renders entries grouped by calendar day with daily
// totals, and returns the total completed seconds across all groups.
// Running entries are listed but excluded from totals.
func writeEntryGroups(sb *strings.Builder, entries []toggl.TimeEntry, names map[int64]string) int64 {
	byDay := make(map[string][]toggl.TimeEntry)
	for _, e := range entries {
		day := e.Start.Format(dateLayout)
		byDay[day] = append(byDay[day], e)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	var total int64
	for _, day := range days {
		fmt.Fprintf(sb, "**%s**\n", day)

		var dailyTotal int64
		for _, e := range byDay[day] {
			duration := "running"
			if !e.Running() {
				duration = formatDuration(e.Duration)
				dailyTotal += e.Duration
			}
			fmt.Fprintf(sb, "  • %s | %s | %s | %s\n",
				formatClock(e.Start), displayProject(e.ProjectID, names), displayDescription(e.Description), duration)
		}

		if dailyTotal > 0 {
			fmt.Fprintf(sb, "  **Daily Total: %s**\n", formatDuration(dailyTotal))
		}
		sb.WriteString("\n")
		total += dailyTotal
	}

	return total
}
