package handler

import (
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Services groups what the router needs to build its handlers.
type Services struct {
	Catalog CatalogService
	Relay   RelayService
	History HistoryService
}

// SetupRouter creates the main Chi router for the application. db may be nil.
func SetupRouter(s Services, db *sql.DB, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Standard Middleware ---
	// RequestID: tags every request so log lines of one call can be grouped.
	r.Use(middleware.RequestID)
	// Logger: logs method, path, latency and status of every request.
	r.Use(middleware.Logger)
	// Recoverer: turns a panic into a 500 instead of killing the process.
	r.Use(middleware.Recoverer)

	// --- CORS Middleware ---
	// The barcode scanner front end runs on another origin and sends X-User-ID,
	// so that header has to be allowed explicitly.
	r.Use(cors.Handler(cors.Options{
		// Read-only, credential-free API: any origin may call it.
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", userIDHeader},
		ExposedHeaders:   []string{relayIDHeader, "Location"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any major browser
	}))

	// --- Route Definitions ---

	healthHandler := NewHealthHandler(db, logger)
	foodHandler := NewFoodHandler(s.Catalog, logger)
	productHandler := NewProductHandler(s.Relay, logger)
	historyHandler := NewHistoryHandler(s.History, logger)

	r.Get("/healthz", healthHandler.Check)

	// Mock catalog, served from memory.
	r.Route("/v1/foods", func(r chi.Router) {
		r.Get("/", foodHandler.Search)
		r.Get("/{id}", foodHandler.GetByID)
	})

	// Relays to Open Food Facts.
	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.Search)
		r.Get("/{barcode}", productHandler.GetByBarcode)
	})

	r.Get("/history", historyHandler.List)

	return r
}
