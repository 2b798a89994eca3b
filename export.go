package atmalerts

import (
	"encoding/json"
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/danielprats/atmalerts/model"
)

// ExportJSON renders an alert list as indented JSON, for download by
// the presentation layer.
func ExportJSON(alerts []model.Alert) ([]byte, error) {
	data, err := json.MarshalIndent(alerts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling alerts: %w", err)
	}
	return data, nil
}

// ExportCSV renders an alert list back to CSV. Output uses standard
// CSV quoting; it is not guaranteed to be byte-identical to the source
// extract.
func ExportCSV(alerts []model.Alert) ([]byte, error) {
	data, err := gocsv.MarshalBytes(&alerts)
	if err != nil {
		return nil, fmt.Errorf("marshaling alerts: %w", err)
	}
	return data, nil
}
