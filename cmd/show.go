package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielprats/atmalerts"
)

var showCmd = &cobra.Command{
	Use:   "show <alert-id>",
	Short: "Shows one alert with affected routes, stops and operators",
	Args:  cobra.ExactArgs(1),
	RunE:  show,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func show(cmd *cobra.Command, args []string) error {
	manager, err := loadManager()
	if err != nil {
		return err
	}

	alertID := args[0]

	alert, err := manager.AlertByID(alertID)
	if err != nil {
		return err
	}

	fmt.Printf("Alert %s (%s)\n", alert.AlertID, atmalerts.FormatStatus(alert.Status))
	fmt.Printf("  %s\n", alert.HeaderCat)
	if alert.DescriptionCat != "" {
		fmt.Printf("  %s\n", alert.DescriptionCat)
	}
	fmt.Printf("  From: %s\n", atmalerts.FormatDate(alert.ActiveStart))
	fmt.Printf("  To:   %s\n", atmalerts.FormatDate(alert.ActiveEnd))
	if alert.Effect != "" {
		fmt.Printf("  Effect: %s\n", alert.Effect)
	}
	if alert.URLCat != "" {
		fmt.Printf("  More info: %s\n", alert.URLCat)
	}

	routes, err := manager.RoutesForAlert(alertID)
	if err != nil {
		return err
	}
	fmt.Printf("\nAffected routes (%d):\n", len(routes))
	for _, r := range routes {
		fmt.Printf("  %s\n", r.RouteID)
	}

	stops, err := manager.StopsForAlert(alertID)
	if err != nil {
		return err
	}
	fmt.Printf("\nAffected stops (%d):\n", len(stops))
	for _, s := range stops {
		fmt.Printf("  %s\n", s.StopID)
	}

	info, err := manager.OperatorsInfoForAlert(alertID)
	if err != nil {
		return err
	}
	fmt.Printf("\nOperators over %s: %d unique across %d/%d stops\n",
		info.DateRange,
		info.UniqueOperators,
		info.StopsWithOperators,
		info.TotalStops,
	)
	if len(info.Operators) > 0 {
		fmt.Printf("  %s\n", strings.Join(info.Operators, ", "))
	}

	return nil
}
