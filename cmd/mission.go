package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepdish/chicagotrail/internal/mission"
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Print the deterministic mission for a date",
	Run: func(cmd *cobra.Command, args []string) {
		dateKey, _ := cmd.Flags().GetString("date")
		if dateKey == "" {
			dateKey = mission.TodayKey()
		}
		m := mission.Generate(dateKey)
		fmt.Printf("%s\n  character: %s\n  start:     %s\n  end:       %s\n",
			dateKey, m.Character, m.StartLocation, m.EndLocation)
	},
}

func init() {
	missionCmd.Flags().String("date", "", "Date key (YYYY-MM-DD) instead of today")
}
