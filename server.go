package markertrack

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes returns the bridge HTTP mux. Exposed separately so tests can drive
// the handlers through httptest without binding a port.
func (b *Bridge) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", b.handleHealth)
	mux.HandleFunc("/api/fixes", b.handleFixes)
	mux.HandleFunc("/api/snapshot.json", b.handleSnapshotJSON)
	mux.HandleFunc("/api/snapshot.xml", b.handleSnapshotXML)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (b *Bridge) StartServer() {
	addr := fmt.Sprintf(":%d", b.Cfg.Server.Port)
	b.server = &http.Server{
		Addr:              addr,
		Handler:           b.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := b.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func (b *Bridge) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if b.server != nil {
		if err := b.server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
