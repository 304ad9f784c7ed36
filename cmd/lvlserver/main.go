// Command lvlserver serves level generation over a websocket.
//
// Configuration comes from the environment: PORT (8080), DB_TYPE
// (json|postgres), DATABASE_URL and DB_FILE (levels.json).
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/lvlgen/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := server.ConfigFromEnv(os.Getenv)
	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	db, err := server.OpenStorage(openCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize persistence: %v", err)
	}
	defer db.Close()
	log.Println("Persistence initialized successfully")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.New(db).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
	log.Println("Server stopped")
}
