package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepdish/chicagotrail/internal/app"
	"github.com/deepdish/chicagotrail/internal/llm"
	"github.com/deepdish/chicagotrail/internal/mission"
	"github.com/deepdish/chicagotrail/internal/store"
	"github.com/deepdish/chicagotrail/internal/trivia"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play today's trail challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("server", "", "Question source server URL (overrides TRAIL_SERVER_URL)")
	playCmd.Flags().String("date", "", "Play a specific date key (YYYY-MM-DD) instead of today")
}

func runPlay(cmd *cobra.Command) error {
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

	return app.Run(app.Options{
		Repo:    st.SessionRepo(),
		Source:  source,
		DateKey: dateKey,
	})
}

// questionSource picks the Question Source: a remote server when one
// is configured, otherwise a direct LLM provider.
func questionSource(cmd *cobra.Command, st *store.Store) (trivia.Source, error) {
	serverURL := ""
	if cmd.Flags().Lookup("server") != nil {
		serverURL, _ = cmd.Flags().GetString("server")
	}
	if serverURL == "" {
		serverURL = os.Getenv("TRAIL_SERVER_URL")
	}
	if serverURL != "" {
		return trivia.NewHTTPSource(serverURL), nil
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("no question source: set TRAIL_SERVER_URL or configure an LLM provider: %w", err)
	}
	return trivia.NewLLMSource(provider, trivia.DefaultConfig()), nil
}
