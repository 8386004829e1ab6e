package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepdish/chicagotrail/internal/mission"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored sessions (defaults to today's)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		all, _ := cmd.Flags().GetBool("all")
		if all {
			if err := st.SessionRepo().DeleteAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Cleared all sessions")
			return nil
		}

		dateKey, _ := cmd.Flags().GetString("date")
		if dateKey == "" {
			dateKey = mission.TodayKey()
		}
		if err := st.SessionRepo().Delete(cmd.Context(), dateKey); err != nil {
			return err
		}
		fmt.Println("Cleared session for", dateKey)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("date", "", "Date key (YYYY-MM-DD) to clear instead of today")
	resetCmd.Flags().Bool("all", false, "Clear every stored session")
}
