// README: Entry point; loads config, wires services, starts HTTP server and background flusher.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamneilroberts/roadtrip-buddy/internal/ai"
	"github.com/iamneilroberts/roadtrip-buddy/internal/config"
	"github.com/iamneilroberts/roadtrip-buddy/internal/debug"
	httptransport "github.com/iamneilroberts/roadtrip-buddy/internal/http"
	"github.com/iamneilroberts/roadtrip-buddy/internal/infra"
	"github.com/iamneilroberts/roadtrip-buddy/internal/maps"
	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/conversation"
	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/location"
	"github.com/iamneilroberts/roadtrip-buddy/internal/prompt"
	"github.com/iamneilroberts/roadtrip-buddy/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	hub := debug.NewHub()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.ModelID, hub)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	var routeSvc *maps.RouteService
	if cfg.Maps.APIKey != "" {
		routeSvc, err = maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	} else {
		log.Print("GOOGLE_MAPS_API_KEY not set, route generation disabled")
	}

	feed := location.NewDeviceFeed()
	locationStore := location.NewStore(dbPool, redisClient)
	locationSvc := location.NewService(locationStore, feed)
	defer locationSvc.Close()

	conversationSvc := conversation.NewService(conversation.NewStore(redisClient))
	promptStore := prompt.NewStore(redisClient)

	recommender := service.NewRecommender(provider, locationSvc, conversationSvc, promptStore)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Recommender:  recommender,
		Conversation: conversationSvc,
		Location:     locationSvc,
		Feed:         feed,
		Routes:       routeSvc,
		Prompts:      promptStore,
		Hub:          hub,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go locationSvc.RunSnapshotFlusher(ctx, time.Duration(cfg.Simulation.SnapshotFlushSeconds)*time.Second)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
