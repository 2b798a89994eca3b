package testutil

// Helpers for building datasets in tests.

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielprats/atmalerts"
	"github.com/danielprats/atmalerts/fetch"
)

// Resources joins per-file CSV lines into resource bodies.
func Resources(files map[string][]string) map[string][]byte {
	resources := map[string][]byte{}
	for name, lines := range files {
		resources[name] = []byte(strings.Join(lines, "\n"))
	}
	return resources
}

// ValidResources is a small consistent dataset covering all four
// tables. Tests mutate a copy to build their scenarios.
func ValidResources() map[string][]string {
	return map[string][]string{
		"alerts.csv": {
			"alert_id,status,active_start,active_end,created_at,header_cat,description_cat",
			"1,ACTIVE,2025-03-10T08:00:00Z,,2025-03-09T12:00:00Z,Bus delay,Works on line 63",
			"2,INACTIVE,2025-03-01T08:00:00Z,2025-03-02T20:00:00Z,2025-02-28T09:00:00Z,Metro closed,L1 interrupted",
		},
		"alert_routes.csv": {
			"alert_id,route_id",
			"1,R63",
			"2,L1",
		},
		"alert_stops.csv": {
			"alert_id,stop_id",
			"1,S1",
			"2,S2",
		},
		"sto_puntuades.csv": {
			"stop_id,dia,num,lst",
			`S1,2025-03-10,2,"TMB, AMB"`,
			"S2,2025-03-01,1,TMB",
		},
	}
}

// LoadedManager builds a Manager over an in-memory supplier and loads
// it, failing the test on any error.
func LoadedManager(t testing.TB, files map[string][]string) (*atmalerts.Manager, *fetch.Memory) {
	t.Helper()

	supplier := fetch.NewMemory(Resources(files))
	manager := atmalerts.NewManager(supplier)
	require.NoError(t, manager.Load(context.Background()))

	return manager, supplier
}
