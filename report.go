package sortbench

import (
	"database/sql"
)

// Reporting reads persisted results back out with plain database/sql so the
// report tool doesn't drag the ORM along. It lists stored runs as they were
// recorded; it computes no aggregate statistics.

// QueryAlgorithms returns the distinct algorithm identifiers with stored
// runs, ordered by each algorithm's first recorded run.
func QueryAlgorithms(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT algorithm FROM benchmark_results
		GROUP BY algorithm ORDER BY MIN(id)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var algorithms []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		algorithms = append(algorithms, name)
	}
	return algorithms, rows.Err()
}

// QueryRuns returns every stored run for one algorithm in insertion order.
func QueryRuns(db *sql.DB, algorithm string) ([]*BenchmarkResult, error) {
	rows, err := db.Query(`SELECT id, algorithm, ordering, element_count, seconds, comparisons
		FROM benchmark_results WHERE algorithm = ? ORDER BY id`, algorithm)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*BenchmarkResult
	for rows.Next() {
		r := &BenchmarkResult{}
		if err := rows.Scan(&r.ID, &r.Algorithm, &r.Ordering,
			&r.ElementCount, &r.Seconds, &r.Comparisons); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
