package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lezzet-duragi/menud/pkg/server"
	"github.com/lezzet-duragi/menud/pkg/storage"
)

func main() {
	// Env file is optional; flags and environment take precedence
	_ = godotenv.Load()

	// Command line flags
	var (
		port     = flag.String("port", getEnv("MENUD_PORT", "8080"), "Server port")
		dataFile = flag.String("data-file", getEnv("MENUD_DATA_FILE", "data/menu.json"), "Menu JSON document path")
		backup   = flag.Bool("backup", true, "Write a compressed snapshot after every save")
		restore  = flag.Bool("restore", false, "Rebuild the menu JSON document from the latest snapshot and exit")
		showHelp = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nmenud serves the restaurant menu catalog backed by a single JSON file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # Start with defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -port 9090 -data-file menu.json  # Custom port and data file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -restore                         # Recover menu.json from its snapshot\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nSafety Note:\n")
		fmt.Fprintf(os.Stderr, "  Concurrent admins writing at once race under last-write-wins.\n")
		fmt.Fprintf(os.Stderr, "  The service is meant for single-admin, low-traffic deployments.\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	store := storage.NewFileStore(
		storage.WithPath(*dataFile),
		storage.WithBackup(*backup),
	)

	if *restore {
		doc, err := store.RestoreFromBackup()
		if err != nil {
			log.Fatalf("Could not restore from backup: %v", err)
		}
		log.Printf("INFO: Restored %d menu items and %d categories to %s", len(doc.MenuItems), len(doc.Categories), *dataFile)
		os.Exit(0)
	}

	srv := server.New(store)

	// Create HTTP server
	httpServer := &http.Server{
		Addr:    ":" + *port,
		Handler: srv.Router(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting menud server on :%s", *port)
		log.Printf("Serving menu document from %s", *dataFile)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
