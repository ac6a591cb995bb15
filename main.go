package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog/internal/config"
	"catalog/internal/logger"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Product catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (yaml, json, toml)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, configPath)
		},
	})
	return rootCmd
}

func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger.SetGlobals()
	log, err := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Env: cfg.AppEnv})
	if err != nil {
		return err
	}
	log = log.With().Str(logger.KeyAppName, "catalog").Logger()
	log.Info().Interface(logger.KeyConfig, cfg).Msg("loaded config")

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer func() {
			if err := mqClient.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close RabbitMQ client")
			}
		}()
		publisher = mqClient

		if err := mqClient.ConsumeProductEvents(logProductEvent(log)); err != nil {
			return fmt.Errorf("failed to start product event consumer: %w", err)
		}
		log.Info().Msg("product events enabled")
	}

	app := NewApp(cfg, log, publisher)

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.AppPort).Msg("starting server")
		listenErr <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-listenErr; err != nil {
		log.Debug().Err(err).Msg("listener stopped")
	}
	log.Info().Msg("server gracefully stopped")
	return nil
}

// logProductEvent returns a consumer handler that logs every product event.
func logProductEvent(log zerolog.Logger) func(amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		if !json.Valid(msg.Body) {
			log.Warn().Str(logger.KeyRoutingKey, msg.RoutingKey).Msg("dropping malformed product event")
			return fmt.Errorf("product event on %s is not valid JSON", msg.RoutingKey)
		}
		log.Info().
			Str(logger.KeyRoutingKey, msg.RoutingKey).
			RawJSON("event", msg.Body).
			Msg("received product event")
		return nil
	}
}
