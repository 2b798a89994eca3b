package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielprats/atmalerts"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists alerts, most recent first",
	Args:  cobra.NoArgs,
	RunE:  list,
}

var (
	listStatus string
	listSearch string
)

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "", "", "only alerts with this status (ACTIVE, ACTIVE_OLD, INACTIVE)")
	listCmd.Flags().StringVarP(&listSearch, "search", "", "", "only alerts matching this text")
	rootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command, args []string) error {
	manager, err := loadManager()
	if err != nil {
		return err
	}

	alerts, err := manager.Alerts(atmalerts.AlertFilter{
		Status: listStatus,
		Search: listSearch,
	})
	if err != nil {
		return err
	}

	for _, a := range alerts {
		fmt.Printf("%s  %-12s  %s  %s\n",
			a.AlertID,
			atmalerts.FormatStatus(a.Status),
			atmalerts.FormatDate(a.ActiveStart),
			a.HeaderCat,
		)
	}

	return nil
}
