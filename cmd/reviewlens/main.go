package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reviewlens/reviewlens"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	cfg := reviewlens.DefaultConfig()
	if *configPath != "" {
		loaded, err := reviewlens.LoadConfig(*configPath)
		if err != nil {
			slog.Error("load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.Listen = addr
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	vectorizer, scorer, err := reviewlens.ModelFromDisk(cfg.ModelPath)
	if err != nil {
		logger.Error("load model", "error", err)
		os.Exit(1)
	}

	slang, err := reviewlens.LoadSlangDict(cfg.SlangPath)
	if err != nil {
		logger.Error("load slang dictionary", "error", err)
		os.Exit(1)
	}

	corpus, err := reviewlens.LoadCorpus(cfg.CorpusPath)
	if err != nil {
		// The demo corpus is a convenience, not a requirement.
		logger.Warn("demo corpus unavailable", "error", err)
		corpus = nil
	}

	analyzer, err := reviewlens.NewAnalyzer(vectorizer, scorer,
		reviewlens.WithSlang(slang),
		reviewlens.WithTopN(cfg.TopN))
	if err != nil {
		logger.Error("build analyzer", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           reviewlens.NewServer(analyzer, corpus, logger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("listening", "addr", cfg.Listen, "features", len(vectorizer.FeatureNames()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
