package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alfagnish/userbook/internal/config"
	"github.com/alfagnish/userbook/internal/render"
	"github.com/alfagnish/userbook/internal/server"
	"github.com/alfagnish/userbook/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// 1. Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Printf("config: listen=%s store=%s", cfg.Server.ListenAddr, cfg.Store.Driver)

	// 2. Open the user store.
	var st store.UserStore
	switch cfg.Store.Driver {
	case "sqlite":
		s, err := store.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			log.Fatalf("failed to open sqlite store: %v", err)
		}
		defer s.Close()
		st = s
		log.Printf("sqlite store ready at %s", cfg.Store.SQLitePath)
	default:
		st = store.NewMemoryStore()
	}

	// 3. Parse the embedded templates.
	rn, err := render.New()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}

	// 4. Set up the chi router with all handlers.
	handler, err := server.New(cfg, st, rn)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	// 5. Start the HTTP server.
	srv := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("userbook listening on %s", cfg.Server.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}

	log.Println("userbook stopped")
}
