package sortbench

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

// DSN joins path, name, and any pragma/option query parameters into the
// sqlite connection string.
func (pc *PersistenceConfig) DSN() string {
	params := make([]string, 0, len(pc.SQLitePragmas)+len(pc.SQLiteOptions))
	for _, prag := range pc.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, pc.SQLiteOptions...)

	dsn := filepath.Join(pc.Path, pc.Name)
	if len(params) > 0 {
		dsn = dsn + "?" + strings.Join(params, "&")
	}
	return dsn
}

// Persistence is the durable result sink: one benchmark_results row per run
// in a sqlite database, queryable afterwards with the report tool.
type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	db, err := gorm.Open(sqlite.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(&BenchmarkResult{})
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Fatalf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

// Consume stores the run's result row. The sorted sequence itself belongs to
// the snapshot store, not the relational table. Inserting works on a copy so
// the caller's result stays untouched by gorm's ID assignment.
func (p *Persistence) Consume(res *BenchmarkResult, _ []string) error {
	if res == nil {
		return fmt.Errorf("result cannot be nil")
	}

	row := *res
	row.ID = 0
	if result := p.DB.Create(&row); result.Error != nil {
		return fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return nil
}
