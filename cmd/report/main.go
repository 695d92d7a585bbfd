package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	sb "sortbench"

	"github.com/BurntSushi/toml"
	_ "github.com/glebarez/go-sqlite"
)

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for sortbench tools to use. Defaults to './config.toml'")

func main() {
	flag.Parse()

	conffile, err := os.Open(*toolConfigPath)

	if err != nil {
		log.Fatalf("Unable to load sortbench config: %v", err)
	}

	confDecoder := toml.NewDecoder(conffile)
	var toolConfig sb.ToolConfig
	if _, err = confDecoder.Decode(&toolConfig); err != nil {
		log.Fatalf("Failed to unmarshal tool config: %v", err)
	}
	conffile.Close()

	if toolConfig.Persistence == nil {
		log.Fatalf("No [persistence] section in %s; nothing to report", *toolConfigPath)
	}

	dbPath := filepath.Join(toolConfig.Persistence.Path, toolConfig.Persistence.Name)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("Failed to open results database: %v", err)
	}
	defer db.Close()

	algorithms, err := sb.QueryAlgorithms(db)
	if err != nil {
		log.Fatalf("Failed to query algorithms: %v", err)
	}
	if len(algorithms) == 0 {
		fmt.Println("No benchmark runs recorded.")
		return
	}

	for _, algorithm := range algorithms {
		runs, err := sb.QueryRuns(db, algorithm)
		if err != nil {
			log.Fatalf("Failed to query runs for %s: %v", algorithm, err)
		}
		fmt.Printf("=== %s ===\n", algorithm)
		for _, run := range runs {
			fmt.Printf("%-10s N=%-6d Time: %.6fs  Comparisons: %d\n",
				run.Ordering, run.ElementCount, run.Seconds, run.Comparisons)
		}
		fmt.Println()
	}
}
