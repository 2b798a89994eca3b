package atmalerts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielprats/atmalerts/fetch"
	"github.com/danielprats/atmalerts/model"
	"github.com/danielprats/atmalerts/parse"
)

// The four resources making up one dataset.
const (
	ResourceAlerts        = "alerts.csv"
	ResourceAlertRoutes   = "alert_routes.csv"
	ResourceAlertStops    = "alert_stops.csv"
	ResourceStopOperators = "sto_puntuades.csv"
)

const DefaultFetchTimeout = 30 * time.Second

var (
	// Returned by queries issued before a successful Load.
	ErrNotLoaded = errors.New("dataset not loaded")

	// Returned when an alert id resolves to nothing.
	ErrAlertNotFound = errors.New("alert not found")

	// Load fails with this when the alerts table parses to zero rows.
	ErrNoAlerts = errors.New("no alerts in dataset")
)

// Manager owns one in-memory dataset of alert data: the four source
// tables, loaded atomically as a set, plus the query and attribution
// operations over them.
//
// Load is guarded by a single shared in-flight operation: concurrent
// callers await the same load, and its outcome stays pinned until
// Clear. Once loaded the dataset is immutable.
type Manager struct {
	Fetcher fetch.Fetcher
	Logger  *slog.Logger
	TimeNow func() time.Time

	mutex   sync.Mutex
	pending *loadOp
	data    *dataset
}

// One load pass. Await done, then read err.
type loadOp struct {
	done chan struct{}
	err  error
}

func NewManager(f fetch.Fetcher) *Manager {
	return &Manager{
		Fetcher: f,
		Logger:  slog.Default(),
		TimeNow: time.Now,
	}
}

// The four parsed tables. Built in one piece by a load pass and never
// mutated afterwards.
type dataset struct {
	alerts        []model.Alert
	alertRoutes   []model.AlertRoute
	alertStops    []model.AlertStop
	stopOperators []model.StopOperatorDay
}

// Load fetches and parses the four source tables. All fetches are
// issued concurrently and any single failure aborts the whole load; no
// partial dataset is ever exposed.
//
// Only the first call performs the ingestion. Later and concurrent
// calls observe the same outcome, including a failure, which is fatal
// for the session until Clear resets the manager.
func (m *Manager) Load(ctx context.Context) error {
	m.mutex.Lock()
	if m.pending != nil {
		op := m.pending
		m.mutex.Unlock()
		<-op.done
		return op.err
	}
	op := &loadOp{done: make(chan struct{})}
	m.pending = op
	m.mutex.Unlock()

	data, err := m.ingest(ctx)

	m.mutex.Lock()
	if err == nil {
		m.data = data
	}
	op.err = err
	close(op.done)
	m.mutex.Unlock()

	return err
}

func (m *Manager) ingest(ctx context.Context) (*dataset, error) {
	names := []string{
		ResourceAlerts,
		ResourceAlertRoutes,
		ResourceAlertStops,
		ResourceStopOperators,
	}

	bodies := make([][]byte, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			body, err := m.Fetcher.Fetch(ctx, name)
			bodies[i] = body
			if err != nil {
				errs[i] = fmt.Errorf("fetching %s: %w", name, err)
			}
		}(i, name)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	data := &dataset{
		alerts:        parse.Alerts(bodies[0]),
		alertRoutes:   parse.AlertRoutes(bodies[1]),
		alertStops:    parse.AlertStops(bodies[2]),
		stopOperators: parse.StopOperatorDays(bodies[3]),
	}

	if len(data.alerts) == 0 {
		return nil, ErrNoAlerts
	}

	m.Logger.Info("dataset loaded",
		"alerts", len(data.alerts),
		"alert_routes", len(data.alertRoutes),
		"alert_stops", len(data.alertStops),
		"stop_operator_days", len(data.stopOperators),
	)

	return data, nil
}

// Loaded reports whether a dataset is available for queries.
func (m *Manager) Loaded() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.data != nil
}

// Clear drops all loaded data and forgets any completed or failed load,
// so a fresh Load may run. Safe to call at any time; purely an
// in-memory assignment.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.pending = nil
	m.data = nil
}

// snapshot returns the loaded dataset, or ErrNotLoaded. The returned
// dataset is immutable and safe to read without the lock.
func (m *Manager) snapshot() (*dataset, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.data == nil {
		return nil, ErrNotLoaded
	}
	return m.data, nil
}
