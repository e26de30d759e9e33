package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/suar-net/food-relay/internal/config"
	"github.com/suar-net/food-relay/internal/database"
	"github.com/suar-net/food-relay/internal/handler"
	"github.com/suar-net/food-relay/internal/model"
	"github.com/suar-net/food-relay/internal/proxy"
	"github.com/suar-net/food-relay/internal/repository"
	"github.com/suar-net/food-relay/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from OS")
	}

	logger := log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Relay history is optional; without a database the relays still work.
	var db *sql.DB
	var history repository.IRelayRepository
	if cfg.DB.Enabled() {
		db, err = database.ConnectDB(cfg.DB)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		migrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = database.Migrate(migrateCtx, db)
		cancel()
		if err != nil {
			logger.Fatalf("Failed to prepare database: %v", err)
		}
		history = repository.NewRepository(db).Relay()
		logger.Println("Succesfully connected to database, relay history enabled")
	} else {
		logger.Println("DB_HOST not set, relay history disabled")
	}

	catalogService := service.NewCatalogService(model.MockFoods())
	relayService := service.NewRelayService(proxy.NewClient(), history, cfg.Upstream, logger)

	router := handler.SetupRouter(handler.Services{
		Catalog: catalogService,
		Relay:   relayService,
		History: relayService,
	}, db, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Printf("Server starting on port %s", cfg.Server.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Cannot run server on port %s: %v", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Println("Shut down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Println("Server successfully shut down")
}
