package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	APIJobsKey           string // apijobs.dev API key; empty disables enrichment
	APIJobsURL           string
	FetchTimeout         time.Duration
	MaxContentChars      int
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	TrackerPath          string         // SQLite tracker path; empty = $HOME/.go_hunter/tracker.db
	HTTPClient           *http.Client
	BrowserClient        *BrowserClient // nil = plain net/http fetching only
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (jobs).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
