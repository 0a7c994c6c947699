package config

const (
	defaultHistoryDB   = "~/.local/share/partsort/history.db"
	defaultLogDir      = "~/.local/share/partsort/logs"
	defaultSortDirName = "Sort"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			HistoryDB:   defaultHistoryDB,
			LogDir:      defaultLogDir,
			SortDirName: defaultSortDirName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
