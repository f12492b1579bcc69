package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gemini-nlp/internal/app"
	"gemini-nlp/internal/config"
	"gemini-nlp/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logging is not configured yet; make the failure visible either way
		fmt.Fprintln(os.Stderr, "gemini-nlp:", err)
		if errors.Is(err, config.ErrConfigurationMissing) {
			fmt.Fprintln(os.Stderr, "set GOOGLE_API_KEY in the environment or in config.toml")
		}
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level); err != nil {
		fmt.Fprintln(os.Stderr, "gemini-nlp: logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("gemini-nlp started", map[string]any{
		"port": cfg.App.Port,
	})

	if err := application.Run(ctx); err != nil {
		logger.Fatal("http server failed", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("gemini-nlp stopped cleanly", nil)
}
