package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepdish/chicagotrail/internal/config"
	"github.com/deepdish/chicagotrail/internal/llm"
	"github.com/deepdish/chicagotrail/internal/server"
	"github.com/deepdish/chicagotrail/internal/trivia"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the daily-trivia API server",
	Long:  "Serves the Question Source API (/api/daily-trivia) backed by an LLM provider, with one generated batch cached per date.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		source := trivia.NewLLMSource(provider, trivia.DefaultConfig())
		srv := server.New(cfg, source)

		fmt.Println("chicagotrail serving on", cfg.Server.Addr)
		return srv.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("config", "", "Path to YAML server config")
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}
