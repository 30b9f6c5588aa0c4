package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/letsssgooo/quizHub/internal/app"
	"github.com/letsssgooo/quizHub/internal/client"
	"github.com/letsssgooo/quizHub/internal/config"
	"github.com/letsssgooo/quizHub/internal/lib/slogcustom"
	"github.com/letsssgooo/quizHub/internal/session"
	"github.com/spf13/pflag"
)

func main() {
	cfg := config.Load()

	flagAPIURL := pflag.String("api-url", cfg.APIURL, "base URL of the quiz platform API")
	flagTokenFile := pflag.String("token-file", cfg.TokenFile, "path to the persisted token file")
	flagDebug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()

	level := cfg.LogLevel
	if *flagDebug {
		level = slog.LevelDebug
	}

	log := slog.New(slogcustom.NewCustomHandler(os.Stderr, level))
	slog.SetDefault(log)

	// Отмена контекста по Ctrl+C прерывает все запросы в полёте.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := session.NewFileStore(*flagTokenFile)
	notifier := app.NewColorNotifier(os.Stdout)

	sess := session.New(store, notifier)
	api := client.NewHTTPClient(*flagAPIURL, sess)
	sess.AttachAPI(api)

	a := app.New(sess, api, os.Stdout)

	if err := a.Run(ctx, pflag.Args()); err != nil {
		if errors.Is(err, app.ErrLoginRequired) {
			os.Exit(1)
		}

		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
