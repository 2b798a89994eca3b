package atmalerts

import (
	"sort"
	"strings"
	"time"

	"github.com/danielprats/atmalerts/model"
)

// AlertFilter narrows the alert list. Zero values apply no filtering.
type AlertFilter struct {
	// Exact status match, e.g. model.StatusActive.
	Status string

	// Case-insensitive substring match against the title and
	// description. Alert ids are matched literally.
	Search string
}

// Stats are counts of alerts per status bucket.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	ActiveOld int `json:"activeOld"`
	Inactive  int `json:"inactive"`
}

// Alerts returns all alerts matching the filter, most recent first.
// Ordering follows active_start, falling back to created_at when the
// start is absent; alerts with no parseable date sort last.
func (m *Manager) Alerts(filter AlertFilter) ([]model.Alert, error) {
	data, err := m.snapshot()
	if err != nil {
		return nil, err
	}

	alerts := make([]model.Alert, 0, len(data.alerts))
	for _, a := range data.alerts {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if !matchesSearch(a, filter.Search) {
			continue
		}
		alerts = append(alerts, a)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return sortTime(alerts[i]).After(sortTime(alerts[j]))
	})

	return alerts, nil
}

func matchesSearch(a model.Alert, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.HeaderCat), term) ||
		strings.Contains(strings.ToLower(a.DescriptionCat), term) ||
		strings.Contains(a.AlertID, term)
}

func sortTime(a model.Alert) time.Time {
	when := a.ActiveStart
	if when == "" {
		when = a.CreatedAt
	}
	t, _ := parseInstant(when)
	return t
}

// AlertByID returns the first alert with the given id, or
// ErrAlertNotFound.
func (m *Manager) AlertByID(alertID string) (model.Alert, error) {
	data, err := m.snapshot()
	if err != nil {
		return model.Alert{}, err
	}

	a, found := data.alertByID(alertID)
	if !found {
		return model.Alert{}, ErrAlertNotFound
	}
	return a, nil
}

// RoutesForAlert returns the association rows naming routes affected by
// an alert, in source order.
func (m *Manager) RoutesForAlert(alertID string) ([]model.AlertRoute, error) {
	data, err := m.snapshot()
	if err != nil {
		return nil, err
	}

	routes := []model.AlertRoute{}
	for _, r := range data.alertRoutes {
		if r.AlertID == alertID {
			routes = append(routes, r)
		}
	}
	return routes, nil
}

// StopsForAlert returns the association rows naming stops affected by
// an alert, in source order.
func (m *Manager) StopsForAlert(alertID string) ([]model.AlertStop, error) {
	data, err := m.snapshot()
	if err != nil {
		return nil, err
	}

	stops := []model.AlertStop{}
	for _, s := range data.alertStops {
		if s.AlertID == alertID {
			stops = append(stops, s)
		}
	}
	return stops, nil
}

// Stats counts alerts per status bucket. Unlike the other queries it
// never fails: before a load it reports all zeroes, as it backs
// always-on display.
func (m *Manager) Stats() Stats {
	data, err := m.snapshot()
	if err != nil {
		return Stats{}
	}

	stats := Stats{Total: len(data.alerts)}
	for _, a := range data.alerts {
		switch a.Status {
		case model.StatusActive:
			stats.Active++
		case model.StatusActiveOld:
			stats.ActiveOld++
		case model.StatusInactive:
			stats.Inactive++
		}
	}
	return stats
}
