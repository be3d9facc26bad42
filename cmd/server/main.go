package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"persona-chat/internal/adapter/httpapi"
	"persona-chat/internal/adapter/memory"
	"persona-chat/internal/adapter/openai"
	"persona-chat/internal/adapter/telegram"
	"persona-chat/internal/config"
	"persona-chat/internal/observability"
	"persona-chat/internal/persona"
	"persona-chat/internal/usecase/completion"
)

func main() {
	cfg := config.Load(".env")
	logger := observability.Logger()

	personas := persona.Defaults()
	if cfg.PersonasFile != "" {
		loaded, err := persona.LoadFile(cfg.PersonasFile)
		if err != nil {
			log.Fatalf("failed to load personas from %s: %v", cfg.PersonasFile, err)
		}
		personas = loaded
	}
	registry, err := persona.NewRegistry(personas, cfg.Model)
	if err != nil {
		log.Fatalf("invalid persona configuration: %v", err)
	}

	openAIClient := openai.NewClient(cfg.OpenAIKey)
	svc := completion.NewService(openAIClient, registry, cfg)

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg, svc, memory.NewStore())
		if err != nil {
			log.Fatalf("failed to init telegram bot: %v", err)
		}
		go func() {
			if err := bot.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("telegram bot stopped", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: httpapi.NewServer(svc),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.Addr, "personas", len(personas))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	logger.Info("shutdown complete")
}
