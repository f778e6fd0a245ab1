package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/ladder/pkg/ladder"
	"github.com/cognicore/ladder/pkg/ladder/render"
	"github.com/cognicore/ladder/pkg/ladder/store/sqlite"
)

func main() {
	var (
		dbPath = flag.String("db", "", "SQLite database path (required)")
		runID  = flag.String("id", "", "Show one run instead of listing")
		chart  = flag.Bool("chart", false, "Print the ASCII abstraction profile")
		limit  = flag.Int("limit", 20, "Maximum runs to list")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()
	db, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if *runID == "" {
		runs, err := db.ListRuns(ctx, *limit)
		if err != nil {
			log.Fatal(err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs stored.")
			return
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  %s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Model, r.Source)
		}
		return
	}

	run, err := db.GetRun(ctx, *runID)
	if err != nil {
		log.Fatal(err)
	}
	results := ladder.FromStored(run.Sentences)
	fmt.Print(render.Lines(results))
	if *chart {
		fmt.Println()
		fmt.Print(render.Chart(results))
	}
}
