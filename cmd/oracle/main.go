package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"HexOracle/internal/cache"
	"HexOracle/internal/collector"
	"HexOracle/internal/config"
	"HexOracle/internal/divination"
	"HexOracle/internal/hexagram"
	"HexOracle/internal/notifier"
	"HexOracle/internal/scheduler"
	"HexOracle/internal/server"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "oracle",
		Short: "能源市场周易量化引擎",
		Long:  "Derives I Ching hexagrams from commodity futures daily bars, or from simulated coin tosses, and renders the reading.",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "config file path")

	root.AddCommand(newServeCmd(), newMarketCmd(), newCastCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	var pushNow bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (and the daily push when Telegram is configured)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fetcher, closeFetcher, err := buildFetcher(cfg, log)
			if err != nil {
				return err
			}
			defer closeFetcher()

			svc := divination.NewService(hexagram.NewBook(), fetcher, hexagram.NewTimeCoins(),
				cfg.Symbols, cfg.DataSource.LookbackDays, log)

			if cfg.TelegramEnabled() {
				tn := notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
				sched := scheduler.New(ctx, svc, tn, cfg.Schedule.Symbol, log)
				if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
					return err
				}
				sched.Start()
				defer sched.Stop()
				if pushNow {
					go sched.RunNow()
				}
			} else {
				if pushNow {
					log.Warn().Msg("--push-now ignored, telegram not configured")
				}
				log.Info().Msg("telegram not configured, daily push disabled")
			}

			srv := server.New(server.Config{
				Listen:       cfg.Server.Listen,
				AllowOrigins: cfg.Server.AllowOrigins,
			}, svc, log)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case <-ctx.Done():
				log.Info().Msg("shutting down")
			case err := <-errCh:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().BoolVar(&pushNow, "push-now", false, "push one reading to telegram immediately on start")
	return cmd
}

func newMarketCmd() *cobra.Command {
	var dateStr string
	cmd := &cobra.Command{
		Use:   "market <symbol>",
		Short: "Print a market reading for one symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			ref := time.Now()
			if dateStr != "" {
				if ref, err = time.Parse("2006-01-02", dateStr); err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
			}

			fetcher, closeFetcher, err := buildFetcher(cfg, log)
			if err != nil {
				return err
			}
			defer closeFetcher()

			svc := divination.NewService(hexagram.NewBook(), fetcher, hexagram.NewTimeCoins(),
				cfg.Symbols, cfg.DataSource.LookbackDays, log)

			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			res, err := svc.MarketReading(ctx, args[0], ref)
			if err != nil {
				return err
			}
			fmt.Println(notifier.FormatReading(res))
			return nil
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", "", "reference date (YYYY-MM-DD), defaults to today")
	return cmd
}

func newCastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cast <question>",
		Short: "Cast six lines by simulated coin toss for a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			svc := divination.NewService(hexagram.NewBook(), &collector.MockFetcher{}, hexagram.NewTimeCoins(),
				cfg.Symbols, cfg.DataSource.LookbackDays, log)

			res, err := svc.CastReading(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(notifier.FormatReading(res))
			return nil
		},
	}
}

// setup loads and validates the config and builds the root logger.
func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("invalid config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	return cfg, log, nil
}

// buildFetcher constructs the configured data source, wrapping it with the
// SQLite bar cache when a cache path is set. The returned func releases the
// cache database if one was opened.
func buildFetcher(cfg *config.Config, log zerolog.Logger) (collector.Fetcher, func(), error) {
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "rest":
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	default:
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}

	if cfg.Cache.SQLitePath == "" {
		return fetcher, func() {}, nil
	}

	cached, err := cache.NewSQLiteCache(cfg.Cache.SQLitePath, fetcher, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open bar cache: %w", err)
	}
	log.Info().Str("path", cfg.Cache.SQLitePath).Msg("bar cache enabled")
	return cached, func() { _ = cached.Close() }, nil
}
