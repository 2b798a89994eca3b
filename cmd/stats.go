package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints alert counts per status",
	Args:  cobra.NoArgs,
	RunE:  stats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func stats(cmd *cobra.Command, args []string) error {
	manager, err := loadManager()
	if err != nil {
		return err
	}

	s := manager.Stats()
	fmt.Printf("total:      %d\n", s.Total)
	fmt.Printf("active:     %d\n", s.Active)
	fmt.Printf("active old: %d\n", s.ActiveOld)
	fmt.Printf("inactive:   %d\n", s.Inactive)

	return nil
}
