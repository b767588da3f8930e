package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func main() {
	// Service-name prefix, no timestamps.
	log.SetPrefix("totalfit-api: ")
	log.SetFlags(0)

	cfg := loadConfig()
	gin.SetMode(cfg.GinMode)

	srv := newServer(cfg)
	log.Printf("listening on %s", cfg.HTTPAddress)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped: %v", err)
	}
}
