package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	sb "sortbench"

	"github.com/BurntSushi/toml"
)

/*
	Read config file (TOML)

	From unmarshaled config:
		Load the dataset records
		Prepare sorted/shuffled/reversed orderings
		Run the chosen algorithm once per ordering
		Hand each result to the configured sinks
*/

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for sortbench tools to use. Defaults to './config.toml'")

var algoName *string = flag.String("algo", "", "The sorting algorithm to benchmark: bubble, merge, quick, heap, or transposition")

var dataPath *string = flag.String("data", "", "Dataset file, overriding the configured path")

var lineCount *uint = flag.Uint("n", 0, "Number of dataset lines to load, overriding the configured count")

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

	if toolConfig.Dataset == nil {
		toolConfig.Dataset = &sb.DatasetConfig{}
	}
	if *dataPath != "" {
		toolConfig.Dataset.Path = *dataPath
	}
	if *lineCount > 0 {
		toolConfig.Dataset.Lines = int(*lineCount)
	}

	alg, err := sb.ResolveAlgorithm(*algoName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	sb.InitRNG(toolConfig.Dataset.Seed)

	movies, err := sb.ReadMovies(toolConfig.Dataset.Path, toolConfig.Dataset.Lines)
	if err != nil {
		log.Fatalf("Unable to load dataset: %v", err)
	}
	if len(movies) == 0 {
		log.Fatalf("No movies loaded from %s", toolConfig.Dataset.Path)
	}
	log.Printf("Loaded %d movies", len(movies))

	var sinks []sb.ResultSink
	if toolConfig.Sinks != nil {
		if toolConfig.Sinks.Analysis != "" {
			sinks = append(sinks, sb.NewAnalysisWriter(toolConfig.Sinks.Analysis))
		}
		if toolConfig.Sinks.Sorted != "" {
			sinks = append(sinks, sb.NewSortedWriter(toolConfig.Sinks.Sorted))
		}
		if toolConfig.Sinks.Snapshots != "" {
			snapshots, err := sb.NewSnapshotStore(toolConfig.Sinks.Snapshots)
			if err != nil {
				log.Fatalf("Failed to open snapshot store: %v", err)
			}
			defer snapshots.Close()
			sinks = append(sinks, snapshots)
		}
	}
	if toolConfig.Persistence != nil {
		if persist, err := sb.NewPersistence(toolConfig.Persistence); err != nil {
			log.Fatalf("Failed to create or initialize Persistence: %v", err)
		} else {
			defer persist.Shutdown()
			sinks = append(sinks, persist)
		}
	}

	runner := sb.NewRunner[sb.Movie](sinks...)
	results, err := runner.RunAll(alg, sb.MakeOrderings(movies))
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}

	for _, res := range results {
		fmt.Printf("%-12s %-10s N=%-6d Time: %.6fs  Comparisons: %d\n",
			res.Algorithm, res.Ordering, res.ElementCount, res.Seconds, res.Comparisons)
	}
}
