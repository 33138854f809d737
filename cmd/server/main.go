package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SureshAmal/mmcopilot-mcp/internal/config"
	apphttp "github.com/SureshAmal/mmcopilot-mcp/internal/http"
	"github.com/SureshAmal/mmcopilot-mcp/internal/integrations/marketmaya"
	"github.com/SureshAmal/mmcopilot-mcp/internal/integrations/telegram"
	storepkg "github.com/SureshAmal/mmcopilot-mcp/internal/store"
	"github.com/SureshAmal/mmcopilot-mcp/internal/store/memory"
	"github.com/SureshAmal/mmcopilot-mcp/internal/store/postgres"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	if cfg.MMBearerToken == "" {
		if cfg.MMRequireToken {
			log.Fatal("MM_BEARER_TOKEN is required when MM_REQUIRE_TOKEN is set")
		}
		log.Printf("MM_BEARER_TOKEN is not set; MarketMaya calls will fail at the remote side")
	}

	var st storepkg.Store
	if cfg.StoreMode == "postgres" && cfg.DatabaseURL != "" {
		pgStore, err := postgres.NewStore(cfg.DatabaseURL, cfg.AuditEncryptionKey)
		if err != nil {
			log.Printf("postgres store unavailable, falling back to memory store: %v", err)
			st = memory.NewStore()
		} else {
			st = pgStore
		}
	} else {
		st = memory.NewStore()
	}

	maya := marketmaya.NewClient(cfg.MMBaseURL, cfg.MMBearerToken, cfg.MMTimeout)
	notifier := telegram.NewNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)

	srv := apphttp.NewServer(cfg, st, maya, notifier)

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      srv.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("MarketMaya copilot gateway listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
