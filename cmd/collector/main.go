package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"frontierwatch/db"
	"frontierwatch/internal/collector"
	"frontierwatch/internal/repository"
	"frontierwatch/pkg/feed"

	"github.com/joho/godotenv"
)

func main() {
	days := flag.Int("days", 7, "recency window in days")
	maxResults := flag.Int("max", 5, "max results per model/category")
	flag.Parse()

	godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if os.Getenv("DATABASE_URL") == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	if err := db.Connect(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: connecting to DB: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := repository.NewUpdateRepository(db.DB)
	c := collector.New(repo, feed.NewGoogleNewsClient(), logger)

	records, err := c.Run(*days, *maxResults)
	if err != nil {
		logger.Error("scrape failed", "error", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No new records to insert.")
		return
	}

	logger.Info("writing records", "count", len(records))
	count, err := repo.UpsertUpdates(records)
	if err != nil {
		logger.Error("error writing updates", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Inserted/Updated %d records.\n", count)
}
