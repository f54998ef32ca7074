package common

import (
	"flag"
)

type Params struct {
	workers      int
	logLevel     string
	databaseFile string
	rootPath     string
}

func NewEmptyParams() *Params {
	return &Params{
		workers:      0,
		logLevel:     "",
		databaseFile: "",
		rootPath:     "",
	}
}

func ParseParams() *Params {
	workers := flag.Int("workers", 0, "Number of decode workers. 0 uses the number of CPUs")
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	databaseFile := flag.String("database", ".raw-viewer.db", "Image database file name, created in the image directory")

	flag.Parse()
	rootPath := flag.Arg(0)

	return &Params{
		workers:      *workers,
		logLevel:     *logLevel,
		databaseFile: *databaseFile,
		rootPath:     rootPath,
	}
}

func (s *Params) Workers() int {
	return s.workers
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) DatabaseFile() string {
	return s.databaseFile
}

func (s *Params) RootPath() string {
	return s.rootPath
}
