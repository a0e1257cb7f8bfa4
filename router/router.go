// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/danielhkuo/fit-journal/cliparse"
	"github.com/danielhkuo/fit-journal/handlers"
	"github.com/danielhkuo/fit-journal/middleware"
	"github.com/danielhkuo/fit-journal/store"
)

// NewRouter creates the HTTP handler with all routes configured
func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	authHandler := handlers.NewAuthHandler(cfg)
	dataHandler := handlers.NewDataHandler(st, cfg)

	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", middleware.WithLogging(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})).Methods("GET")

	// Auth
	r.HandleFunc("/api/login", middleware.WithLogging(authHandler.Login)).Methods("POST")

	// Document
	r.HandleFunc("/api/data", middleware.WithLogging(dataHandler.GetData)).Methods("GET")
	r.HandleFunc("/api/data", middleware.WithLogging(dataHandler.SaveData)).Methods("POST")

	// Root
	r.HandleFunc("/", middleware.WithLogging(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("fit-journal API v1"))
	})).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return c.Handler(r)
}
