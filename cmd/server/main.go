package main

import (
	"context"
	"log"

	"baitcheck/internal/ai"
	"baitcheck/internal/analyze"
	"baitcheck/internal/api"
	"baitcheck/internal/config"
	"baitcheck/internal/investigate"
	"baitcheck/internal/monitoring"
	"baitcheck/internal/search"
	"baitcheck/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	aiClient, err := ai.NewClient(ctx, ai.Options{
		APIKey:   cfg.AI.GeminiAPIKey,
		Project:  cfg.AI.Project,
		Location: cfg.AI.Location,
		Model:    cfg.AI.Model,
	})
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}

	// Without a Data API key the analyze endpoint reports every video as
	// unavailable; the oEmbed preview endpoint still works.
	var fetcher analyze.MetadataFetcher
	if cfg.YouTube.APIKey != "" {
		ytClient, err := youtube.NewClient(ctx, cfg.YouTube.APIKey)
		if err != nil {
			log.Fatalf("Failed to create YouTube client: %v", err)
		}
		fetcher = ytClient
	} else {
		log.Println("Warning: YOUTUBE_API_KEY not set, analysis requests will be rejected")
	}

	var investigator analyze.Investigator
	if cfg.SearchEnabled() {
		searchClient, err := search.NewClient(ctx, cfg.Search.APIKey, cfg.Search.EngineID, cfg.Search.Language)
		if err != nil {
			log.Fatalf("Failed to create search client: %v", err)
		}
		investigator = investigate.NewAgent(aiClient, searchClient, aiClient)
		log.Println("Search credentials found, investigation enabled")
	} else {
		log.Println("Search credentials not configured, investigation disabled")
	}

	service := analyze.NewService(fetcher, investigator, aiClient)

	server := api.NewServer(service, youtube.NewOEmbedClient(), monitoring.NewMonitor(), api.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := server.Start(cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
