package sortbench

import (
	"database/sql"
	"path/filepath"
	test "testing"

	_ "github.com/glebarez/go-sqlite"
)

const PRAGMAS = "journal_mode=WAL"

func setupPersistence(t *test.T) (*Persistence, string) {
	dir := t.TempDir()
	persist, err := NewPersistence(&PersistenceConfig{
		Name:          "results.db",
		Path:          dir,
		SQLitePragmas: []string{PRAGMAS},
	})
	if err != nil {
		t.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	t.Cleanup(persist.Shutdown)
	return persist, filepath.Join(dir, "results.db")
}

func TestNewPersistenceValidation(t *test.T) {
	if _, err := NewPersistence(nil); err == nil {
		t.Errorf("Expected an error for a nil config")
	}
	if _, err := NewPersistence(&PersistenceConfig{Name: "results.db"}); err == nil {
		t.Errorf("Expected an error for an empty path")
	}
	if _, err := NewPersistence(&PersistenceConfig{Path: "."}); err == nil {
		t.Errorf("Expected an error for an empty name")
	}
}

func TestPersistenceDSN(t *test.T) {
	config := &PersistenceConfig{
		Name:          "results.db",
		Path:          "/tmp",
		SQLitePragmas: []string{"journal_mode=WAL", "synchronous=NORMAL"},
		SQLiteOptions: []string{"cache=shared"},
	}
	expected := "/tmp/results.db?_pragma=journal_mode=WAL&_pragma=synchronous=NORMAL&cache=shared"
	if config.DSN() != expected {
		t.Errorf("Unexpected DSN:\nExpected: %v\nActual: %v", expected, config.DSN())
	}

	bare := &PersistenceConfig{Name: "results.db", Path: "/tmp"}
	if bare.DSN() != "/tmp/results.db" {
		t.Errorf("Unexpected bare DSN: %v", bare.DSN())
	}
}

func TestPersistenceConsumeAndQuery(t *test.T) {
	persist, dbPath := setupPersistence(t)

	runs := []*BenchmarkResult{
		{Algorithm: "merge", Ordering: OrderSorted, ElementCount: 5, Seconds: 0.000123, Comparisons: 7},
		{Algorithm: "merge", Ordering: OrderReversed, ElementCount: 5, Seconds: 0.000456, Comparisons: 8},
		{Algorithm: "heap", Ordering: OrderSorted, ElementCount: 5, Seconds: 0.000789, Comparisons: 10},
	}
	for _, run := range runs {
		if err := persist.Consume(run, nil); err != nil {
			t.Fatalf("Consume failed: %v", err)
		}
		if run.ID != 0 {
			t.Errorf("Consume mutated the caller's result: ID=%d", run.ID)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open results DB: %v", err)
	}
	defer db.Close()

	algorithms, err := QueryAlgorithms(db)
	if err != nil {
		t.Fatalf("QueryAlgorithms failed: %v", err)
	}
	if len(algorithms) != 2 || algorithms[0] != "merge" || algorithms[1] != "heap" {
		t.Errorf("Unexpected algorithms in first-run order: %v", algorithms)
	}

	stored, err := QueryRuns(db, "merge")
	if err != nil {
		t.Fatalf("QueryRuns failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("Expected 2 merge runs, got %d", len(stored))
	}
	if stored[0].Ordering != OrderSorted || stored[0].Comparisons != 7 {
		t.Errorf("Unexpected first merge run: %+v", stored[0])
	}
	if stored[1].Ordering != OrderReversed || stored[1].Comparisons != 8 {
		t.Errorf("Unexpected second merge run: %+v", stored[1])
	}
	if stored[0].Seconds < 0.0001 || stored[0].Seconds > 0.0002 {
		t.Errorf("Seconds did not survive the round trip: %f", stored[0].Seconds)
	}
}

func TestPersistenceConsumeNil(t *test.T) {
	persist, _ := setupPersistence(t)
	if err := persist.Consume(nil, nil); err == nil {
		t.Errorf("Expected an error for a nil result")
	}
}
