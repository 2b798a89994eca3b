package atmalerts_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielprats/atmalerts"
	"github.com/danielprats/atmalerts/model"
)

func exportFixture() []model.Alert {
	return []model.Alert{
		{
			AlertID:        "1",
			Status:         "ACTIVE",
			ActiveStart:    "2025-03-10T08:00:00Z",
			HeaderCat:      "Bus delay",
			DescriptionCat: "Works, line 63",
		},
		{
			AlertID:   "2",
			Status:    "INACTIVE",
			HeaderCat: "Metro closed",
		},
	}
}

func TestExportJSON(t *testing.T) {
	data, err := atmalerts.ExportJSON(exportFixture())
	require.NoError(t, err)

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "1", decoded[0]["alert_id"])
	assert.Equal(t, "Works, line 63", decoded[0]["description_cat"])
	assert.Equal(t, "INACTIVE", decoded[1]["status"])
}

func TestExportCSV(t *testing.T) {
	data, err := atmalerts.ExportCSV(exportFixture())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "alert_id,status"))
	// The embedded comma survives quoted.
	assert.Contains(t, lines[1], `"Works, line 63"`)
}
