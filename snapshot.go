package sortbench

import (
	"bytes"
	"fmt"

	"go.etcd.io/bbolt"
)

// SnapshotStore records the fully sorted sequence per run in a bbolt
// database, one bucket per algorithm keyed by ordering label. A later run of
// the same (algorithm, ordering) pair overwrites the previous snapshot.
type SnapshotStore struct {
	db *bbolt.DB
}

func NewSnapshotStore(path string) (*SnapshotStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("Unable to open snapshot store %s: %w", path, err)
	}
	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Consume(res *BenchmarkResult, sorted []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(res.Algorithm))
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		for _, line := range sorted {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
		return b.Put([]byte(res.Ordering), buf.Bytes())
	})
}

// Snapshot returns the recorded sequence for one (algorithm, ordering) run,
// one element per line, or nil when that run was never recorded.
func (s *SnapshotStore) Snapshot(algorithm, ordering string) ([]string, error) {
	var lines []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(algorithm))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(ordering))
		if v == nil {
			return nil
		}
		for _, line := range bytes.Split(bytes.TrimRight(v, "\n"), []byte{'\n'}) {
			lines = append(lines, string(line))
		}
		return nil
	})
	return lines, err
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
