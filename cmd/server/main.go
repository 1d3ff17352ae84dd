package main

import (
	"log"
	"net/http"
	"route-optimization-service/internal/api"
	"route-optimization-service/internal/app"
	"route-optimization-service/internal/config"
	"time"
)

// main is the application composition root.
// It wires the routing provider (when a key is configured) behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	svc, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(svc.Optimizer, svc.Planner)

	// WriteTimeout leaves room for multi-stop plans whose legs each wait on the provider.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
