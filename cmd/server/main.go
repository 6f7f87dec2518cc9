/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the jade forecast API server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load the reward catalog (defaults + optional YAML override)
  3. Initialize SQLite store for saved plans
  4. Create API handler and router
  5. Start the catalog reloader
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080)
  -db         SQLite database path (default: forecast.db)
              Use ":memory:" for an in-memory database
  -catalog    YAML reward catalog override (default: none)
  -reload     Catalog reload check interval (default: 1m)
  -origins    Comma-separated CORS origins (default: local dev servers)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop the catalog reloader
  2. Stop accepting new connections
  3. Wait for active requests to complete (30s timeout)
  4. Close database connection

EXAMPLES:
  ./server -db="./data/forecast.db"
  ./server -db=":memory:" -catalog=./catalog.yaml

SEE ALSO:
  - api/server.go: Router configuration
  - rewards/loader.go: Catalog overrides
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/warp/jade-forecast/api"
	"github.com/warp/jade-forecast/rewards"
	"github.com/warp/jade-forecast/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "forecast.db", "SQLite database path")
	catalogPath := flag.String("catalog", "", "YAML reward catalog override")
	reload := flag.Duration("reload", time.Minute, "Catalog reload check interval")
	origins := flag.String("origins", "", "Comma-separated CORS origins")
	flag.Parse()

	// Load catalog
	catalog, err := rewards.LoadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load reward catalog: %v", err)
	}

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize handler
	handler := api.NewHandler(store, rewards.NewCalculator(catalog))

	var opts api.RouterOptions
	if *origins != "" {
		opts.AllowedOrigins = strings.Split(*origins, ",")
	}
	router := api.NewRouter(handler, opts)

	reloader := api.NewCatalogReloader(handler, *catalogPath)
	reloader.CheckInterval = *reload
	reloader.Start()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	reloader.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
