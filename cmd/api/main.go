// cmd/api/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/fitadvisor/advisor"
	"github.com/briangreenhill/fitadvisor/deepseek"
	"github.com/briangreenhill/fitadvisor/internal/config"
	"github.com/briangreenhill/fitadvisor/internal/history"
	"github.com/briangreenhill/fitadvisor/internal/http/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Advisor core; assisted mode only when a key is configured
	opts := []advisor.Option{advisor.WithLogger(logger)}
	if cfg.HasDeepSeek() {
		client, err := deepseek.New(cfg.DeepSeek.APIKey,
			deepseek.WithBaseURL(cfg.DeepSeek.BaseURL),
			deepseek.WithModel(cfg.DeepSeek.Model),
			deepseek.WithTimeout(cfg.DeepSeek.Timeout),
		)
		if err != nil {
			log.Fatalf("deepseek client error: %v", err)
		}
		opts = append(opts, advisor.WithChatClient(client))
	}
	adv := advisor.New(opts...)
	logger.Info().Str("mode", adv.Mode()).Str("port", cfg.Port).Msg("starting fitness advisor API")

	// Router / server
	s := routes.New(routes.ServerOptions{
		Advisor: adv,
		History: history.NewMemoryStore(),
	})
	h := hlog.NewHandler(logger)(s.Router)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: h}
	log.Fatal(srv.ListenAndServe())
}
