package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielprats/atmalerts"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the filtered alert list to JSON or CSV",
	Args:  cobra.NoArgs,
	RunE:  export,
}

var (
	exportFormat string
	exportOutput string
	exportStatus string
	exportSearch string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportStatus, "status", "", "", "only alerts with this status")
	exportCmd.Flags().StringVarP(&exportSearch, "search", "", "", "only alerts matching this text")
	rootCmd.AddCommand(exportCmd)
}

func export(cmd *cobra.Command, args []string) error {
	manager, err := loadManager()
	if err != nil {
		return err
	}

	alerts, err := manager.Alerts(atmalerts.AlertFilter{
		Status: exportStatus,
		Search: exportSearch,
	})
	if err != nil {
		return err
	}

	var data []byte
	switch exportFormat {
	case "json":
		data, err = atmalerts.ExportJSON(alerts)
	case "csv":
		data, err = atmalerts.ExportCSV(alerts)
	default:
		return fmt.Errorf("unknown format %q", exportFormat)
	}
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(exportOutput, data, 0644)
}
