package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepdish/chicagotrail/internal/mission"
	"github.com/deepdish/chicagotrail/internal/trivia"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate and print a question batch without playing",
	Long:  "Fetches the four-question batch for a date from the configured question source and prints it with answers marked. Useful for checking provider configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		source, err := questionSource(cmd, st)
		if err != nil {
			return err
		}

		dateKey, _ := cmd.Flags().GetString("date")
		if dateKey == "" {
			dateKey = mission.TodayKey()
		}

		questions, err := source.Questions(cmd.Context(), dateKey, trivia.QuestionsPerDay)
		if err != nil {
			return err
		}

		for i, q := range questions {
			fmt.Printf("%d. %s\n", i+1, q.Text)
			for j, opt := range q.Options {
				mark := " "
				if j == q.CorrectIndex {
					mark = "*"
				}
				fmt.Printf("   %s %c) %s\n", mark, 'A'+j, opt)
			}
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("date", "", "Date key (YYYY-MM-DD) instead of today")
}
