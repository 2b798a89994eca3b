package atmalerts

import (
	"strconv"
	"strings"
	"time"

	"github.com/danielprats/atmalerts/model"
)

// DayOperators is the result of a single-day operator lookup. Count is
// the count column as published in the source table, which is not
// cross-checked against the operator list.
type DayOperators struct {
	Operators []string `json:"operators"`
	Count     int      `json:"count"`
}

// RangeOperators is the result of a multi-day operator lookup. Unlike
// the single-day path, Count is recomputed as the number of unique
// operators seen over the range. OperatorsByDay keeps the raw per-day
// listings, duplicates included, for diagnostics.
type RangeOperators struct {
	Operators      []string            `json:"operators"`
	Count          int                 `json:"count"`
	DaysWithData   int                 `json:"daysWithData"`
	OperatorsByDay map[string][]string `json:"operatorsByDay"`
}

// StopOperatorsDetail is the per-stop breakdown inside an alert's
// attribution result.
type StopOperatorsDetail struct {
	StopID       string   `json:"stopId"`
	Operators    []string `json:"operators"`
	Count        int      `json:"count"`
	DaysWithData int      `json:"daysWithData"`
}

// AlertOperators aggregates operator attribution across every stop
// affected by one alert.
type AlertOperators struct {
	TotalStops         int                   `json:"totalStops"`
	StopsWithOperators int                   `json:"stopsWithOperators"`
	Operators          []string              `json:"allOperators"`
	UniqueOperators    int                   `json:"totalUniqueOperators"`
	StopDetails        []StopOperatorsDetail `json:"stopDetails"`
	DateRange          string                `json:"dateRange"`
	IsDateRange        bool                  `json:"isDateRange"`
	IsOpenAlert        bool                  `json:"isOpenAlert"`
}

// OperatorsForStop resolves the operators serving a stop on the
// calendar day of the given instant. At most one row is consulted:
// the first exact (stop, day) match. A missing row, or an unparseable
// instant, yields an empty result, never an error beyond the pre-load
// guard.
func (m *Manager) OperatorsForStop(stopID, instant string) (DayOperators, error) {
	data, err := m.snapshot()
	if err != nil {
		return DayOperators{}, err
	}
	return data.operatorsForStop(stopID, instant), nil
}

func (d *dataset) operatorsForStop(stopID, instant string) DayOperators {
	day, ok := DayKey(instant)
	if !ok {
		return DayOperators{Operators: []string{}}
	}

	for _, row := range d.stopOperators {
		if row.StopID == stopID && row.Day == day {
			count, err := strconv.Atoi(row.Count)
			if err != nil {
				count = 0
			}
			return DayOperators{
				Operators: splitOperators(row.Operators),
				Count:     count,
			}
		}
	}

	return DayOperators{Operators: []string{}}
}

// OperatorsForStopInRange resolves the operators serving a stop on any
// day between two instants, inclusive. Every row matching a day is
// consulted (the source may carry several rows per stop and day), and
// operator names are deduplicated across the whole range.
func (m *Manager) OperatorsForStopInRange(stopID, start, end string) (RangeOperators, error) {
	data, err := m.snapshot()
	if err != nil {
		return RangeOperators{}, err
	}
	return data.operatorsForStopInRange(stopID, start, end), nil
}

func (d *dataset) operatorsForStopInRange(stopID, start, end string) RangeOperators {
	result := RangeOperators{
		Operators:      []string{},
		OperatorsByDay: map[string][]string{},
	}

	seen := map[string]bool{}
	for _, day := range DayRange(start, end) {
		matched := false
		for _, row := range d.stopOperators {
			if row.StopID != stopID || row.Day != day {
				continue
			}
			if !matched {
				matched = true
				result.DaysWithData++
				result.OperatorsByDay[day] = []string{}
			}
			if row.Operators == "" {
				continue
			}
			for _, op := range splitOperators(row.Operators) {
				if !seen[op] {
					seen[op] = true
					result.Operators = append(result.Operators, op)
				}
				result.OperatorsByDay[day] = append(result.OperatorsByDay[day], op)
			}
		}
	}

	result.Count = len(result.Operators)
	return result
}

// OperatorsInfoForAlert attributes operators to an alert across all of
// its affected stops.
//
// The effective period depends on the alert: an explicit end date bounds
// the range; an open alert in an active status has no natural end, so
// every elapsed day through today is considered, and the result drifts
// as time passes. An alert with neither is evaluated on its start day
// alone. In single-day mode the published count column is trusted; in
// range mode counts are recomputed from the deduplicated lists.
func (m *Manager) OperatorsInfoForAlert(alertID string) (*AlertOperators, error) {
	data, err := m.snapshot()
	if err != nil {
		return nil, err
	}

	alert, found := data.alertByID(alertID)
	if !found {
		return nil, ErrAlertNotFound
	}

	var stops []string
	for _, s := range data.alertStops {
		if s.AlertID == alertID {
			stops = append(stops, s.StopID)
		}
	}

	hasEnd := strings.TrimSpace(alert.ActiveEnd) != ""
	isActive := alert.Status == model.StatusActive || alert.Status == model.StatusActiveOld
	openAlert := !hasEnd && isActive
	useRange := hasEnd || openAlert

	end := alert.ActiveEnd
	if openAlert {
		end = m.TimeNow().UTC().Format(time.RFC3339)
	}

	m.Logger.Debug("attributing operators",
		"alert_id", alertID,
		"status", alert.Status,
		"active_start", alert.ActiveStart,
		"active_end", alert.ActiveEnd,
		"range_mode", useRange,
		"open_alert", openAlert,
		"stops", len(stops),
	)

	info := &AlertOperators{
		TotalStops:  len(stops),
		Operators:   []string{},
		StopDetails: []StopOperatorsDetail{},
		DateRange:   dateRangeText(alert.ActiveStart, end, useRange, openAlert),
		IsDateRange: useRange,
		IsOpenAlert: openAlert,
	}

	seen := map[string]bool{}
	for _, stopID := range stops {
		var operators []string
		var count, days int

		if useRange {
			ranged := data.operatorsForStopInRange(stopID, alert.ActiveStart, end)
			operators = ranged.Operators
			count = ranged.Count
			days = ranged.DaysWithData
			m.Logger.Debug("stop resolved over range",
				"stop_id", stopID,
				"unique_operators", count,
				"days_with_data", days,
			)
		} else {
			single := data.operatorsForStop(stopID, alert.ActiveStart)
			operators = single.Operators
			count = single.Count
			m.Logger.Debug("stop resolved on start day",
				"stop_id", stopID,
				"count", count,
				"operators", strings.Join(operators, ","),
			)
		}

		if count > 0 {
			info.StopsWithOperators++
			for _, op := range operators {
				if !seen[op] {
					seen[op] = true
					info.Operators = append(info.Operators, op)
				}
			}
		}

		// The detail row always reports at least one day
		// considered, even when nothing matched.
		if days == 0 {
			days = 1
		}
		info.StopDetails = append(info.StopDetails, StopOperatorsDetail{
			StopID:       stopID,
			Operators:    operators,
			Count:        count,
			DaysWithData: days,
		})
	}

	info.UniqueOperators = len(info.Operators)
	return info, nil
}

func (d *dataset) alertByID(alertID string) (model.Alert, bool) {
	for _, alert := range d.alerts {
		if alert.AlertID == alertID {
			return alert, true
		}
	}
	return model.Alert{}, false
}

// Human readable description of the period attribution covered.
func dateRangeText(start, end string, useRange, openAlert bool) string {
	startText, ok := DayKey(start)
	if !ok {
		startText = "invalid date"
	}
	if !useRange {
		return startText
	}

	endText := "today"
	if !openAlert {
		var ok bool
		endText, ok = DayKey(end)
		if !ok {
			endText = "invalid date"
		}
	}
	return startText + " to " + endText
}

// Splits a comma separated operator list, trimming each entry. Empty
// entries are kept as published.
func splitOperators(list string) []string {
	if list == "" {
		return []string{}
	}
	parts := strings.Split(list, ",")
	operators := make([]string, len(parts))
	for i, p := range parts {
		operators[i] = strings.TrimSpace(p)
	}
	return operators
}
