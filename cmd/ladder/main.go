package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/ladder/internal/htmltext"
	"github.com/cognicore/ladder/internal/llm"
	"github.com/cognicore/ladder/pkg/ladder"
	"github.com/cognicore/ladder/pkg/ladder/config"
	"github.com/cognicore/ladder/pkg/ladder/render"
	"github.com/cognicore/ladder/pkg/ladder/store"
	"github.com/cognicore/ladder/pkg/ladder/store/sqlite"
)

func main() {
	var (
		inputPath   = flag.String("input", "", "Input text file (required)")
		calPath     = flag.String("calibration", "", "Calibration examples YAML (optional)")
		outputPath  = flag.String("output", "", "Write results as JSON to this file")
		chart       = flag.Bool("chart", false, "Print the ASCII abstraction profile")
		htmlInput   = flag.Bool("html", false, "Treat input as HTML and extract its text first")
		dbPath      = flag.String("db", "", "SQLite database to persist the run (optional)")
		sourceLabel = flag.String("source", "", "Run label for persistence (default: input file name)")
		baseURL     = flag.String("base-url", "https://api.openai.com/v1/chat/completions", "Chat completions endpoint")
		model       = flag.String("model", "gpt-4o", "Classifier model")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("--input required")
	}

	client := &llm.Client{
		BaseURL: *baseURL,
		APIKey:  os.Getenv("LADDER_API_KEY"),
		Model:   *model,
	}
	// Configuration problems surface here, before any sentence is sent.
	if err := client.Ready(); err != nil {
		log.Fatal(err)
	}

	text, err := readInput(*inputPath, *htmlInput)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var db store.Store
	if *dbPath != "" {
		db, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()
	}

	analyzer := ladder.New(ladder.Options{
		Chatter:  client,
		Examples: config.Examples(*calPath),
		Store:    db,
		Model:    *model,
	})

	var results []ladder.Result
	if db != nil {
		label := *sourceLabel
		if label == "" {
			label = *inputPath
		}
		run, err := analyzer.AnalyzeAndStore(ctx, text, label)
		if err != nil {
			log.Fatal(err)
		}
		results = ladder.FromStored(run.Sentences)
		fmt.Fprintf(os.Stderr, "run %s saved (%d sentences)\n", run.ID, len(run.Sentences))
	} else {
		if results, err = analyzer.Analyze(ctx, text); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Print(render.Lines(results))
	if *chart {
		fmt.Println()
		fmt.Print(render.Chart(results))
	}

	if *outputPath != "" {
		data, err := render.JSON(results)
		if err != nil {
			log.Fatalf("encode results: %v", err)
		}
		if err := os.WriteFile(*outputPath, data, 0644); err != nil {
			log.Fatalf("write output: %v", err)
		}
	}
}

func readInput(path string, isHTML bool) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if !isHTML {
		return string(data), nil
	}
	text, err := htmltext.Extract(strings.NewReader(string(data)))
	if err != nil {
		return "", fmt.Errorf("extract html text: %w", err)
	}
	return text, nil
}
