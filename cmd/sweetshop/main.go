package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sugarstack/sweetshop-cli/internal/api"
	"github.com/sugarstack/sweetshop-cli/internal/catalog"
	"github.com/sugarstack/sweetshop-cli/internal/config"
	"github.com/sugarstack/sweetshop-cli/internal/session"
	"github.com/sugarstack/sweetshop-cli/internal/toast"
	"github.com/sugarstack/sweetshop-cli/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		apiURL    string
		timeoutMS int
	)

	cmd := &cobra.Command{
		Use:           "sweetshop",
		Short:         "Terminal storefront for the Sweet Shop inventory API",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadLocalEnv()
			if apiURL != "" {
				os.Setenv("SWEETSHOP_API_URL", strings.TrimSpace(apiURL))
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if timeoutMS > 0 {
				cfg.HTTPTimeout = time.Duration(timeoutMS) * time.Millisecond
			}

			log := newLogger(cfg.LogLevel)

			client, err := api.New(cfg.APIURL, cfg.HTTPTimeout, log)
			if err != nil {
				return err
			}

			toasts := toast.NewStore(cfg.ToastTTL)
			sessions := session.NewManager(client, cfg.TokenCachePath, log)
			sweets := catalog.New(client, toasts, cfg.DebounceWindow, log)
			app := ui.New(cfg, sessions, sweets, toasts, log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "base URL of the sweet shop API (overrides SWEETSHOP_API_URL)")
	cmd.Flags().IntVar(&timeoutMS, "timeout-ms", 0, "HTTP timeout in milliseconds")
	return cmd
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found; relying on existing environment")
	}
}
