// README: Entry point; loads config, wires the broker, starts the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mishwar/internal/config"
	httptransport "mishwar/internal/http"
	"mishwar/internal/modules/dispatch"
	"mishwar/internal/modules/presence"
	"mishwar/internal/modules/ride"
	"mishwar/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driverStore := presence.NewStore()
	rideStore := ride.NewStore()
	rideSvc := ride.NewService(rideStore, cfg.Ride.RequestTTL)

	hub := ws.NewHub()
	broker := dispatch.NewService(driverStore, rideSvc, hub)

	hub.SetConnectHandler(func(c *ws.Client) { broker.OnConnect(c) })
	hub.SetDisconnectHandler(func(c *ws.Client) { broker.OnDisconnect(c) })
	hub.SetMessageHandler(func(c *ws.Client, event string, data json.RawMessage) error {
		return broker.HandleMessage(c, event, data)
	})
	rideSvc.SetExpiredFunc(broker.OnRequestExpired)

	router := httptransport.NewRouter(hub, cfg.HTTP.TemplateGlob)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go rideSvc.RunExpiry(ctx, time.Duration(cfg.Ride.ExpiryTickSeconds)*time.Second)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("mishwar listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
