package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepdish/chicagotrail/internal/game"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessions, err := st.SessionRepo().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet. Run `chicagotrail play` to start.")
			return nil
		}

		for _, s := range sessions {
			status := fmt.Sprintf("%d/%d answered", s.AnsweredCount(), game.SlotCount)
			if s.Completed {
				status = game.OutcomeFor(s.Score()).Title
			}
			fmt.Printf("%s  score %d/%d  %s\n", s.Date, s.Score(), game.SlotCount, status)
		}
		return nil
	},
}
