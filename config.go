package sortbench

// ToolConfig is the TOML configuration shared by the cmd tools.
//
//	[dataset]
//	path = "movies.csv"
//	lines = 1000
//	seed = 42
//
//	[sinks]
//	analysis = "analysis.txt"
//	sorted = "sorted.txt"
//	snapshots = "snapshots.db"
//
//	[persistence]
//	name = "results.db"
//	path = "."
//	sqlite_pragmas = ["journal_mode=WAL"]
//
// An empty sink path disables that sink; omitting [persistence] disables the
// database sink the same way.
type ToolConfig struct {
	Dataset     *DatasetConfig     `toml:"dataset"`
	Sinks       *SinkConfig        `toml:"sinks"`
	Persistence *PersistenceConfig `toml:"persistence"`
}

type DatasetConfig struct {
	Path  string `toml:"path"`
	Lines int    `toml:"lines"`
	Seed  int64  `toml:"seed"`
}

type SinkConfig struct {
	Analysis  string `toml:"analysis"`
	Sorted    string `toml:"sorted"`
	Snapshots string `toml:"snapshots"`
}
