package main

import (
	"net/http"

	"github.com/rs/cors"

	"nestmap/internal/httpapi"
	"nestmap/internal/logging"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	server := httpapi.New(demoListings(), log)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}).Handler(server.Routes())

	log.Info().Str("addr", cfg.Addr).Msg("listing API listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
