package atmalerts

import (
	"time"

	"github.com/danielprats/atmalerts/model"
)

const dayKeyLayout = "2006-01-02"

// Layouts accepted for instants in the source tables. Naive dates and
// datetimes are taken as UTC, and day keys are always the UTC calendar
// date of the parsed instant.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseInstant(s string) (time.Time, bool) {
	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayKey normalizes an instant string to its YYYY-MM-DD calendar date,
// in UTC. Returns false if the instant doesn't parse.
func DayKey(instant string) (string, bool) {
	t, ok := parseInstant(instant)
	if !ok {
		return "", false
	}
	return t.UTC().Format(dayKeyLayout), true
}

// DayRange expands two instants into the ordered day keys between them,
// inclusive at both ends. An unparseable endpoint, or a start after the
// end, yields nil: there is no applicable range.
func DayRange(start, end string) []string {
	startKey, ok := DayKey(start)
	if !ok {
		return nil
	}
	endKey, ok := DayKey(end)
	if !ok {
		return nil
	}

	from, _ := time.ParseInLocation(dayKeyLayout, startKey, time.UTC)
	to, _ := time.ParseInLocation(dayKeyLayout, endKey, time.UTC)

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dayKeyLayout))
	}
	return days
}

// FormatDate renders an instant for display. Blank and unparseable
// values degrade to placeholder text rather than failing.
func FormatDate(instant string) string {
	if instant == "" {
		return "not specified"
	}
	t, ok := parseInstant(instant)
	if !ok {
		return "invalid date"
	}
	return t.UTC().Format("02/01/2006 15:04")
}

// FormatStatus renders a status code for display. Unknown codes pass
// through verbatim.
func FormatStatus(status string) string {
	switch status {
	case model.StatusActive:
		return "Active"
	case model.StatusActiveOld:
		return "Active (old)"
	case model.StatusInactive:
		return "Inactive"
	}
	return status
}
