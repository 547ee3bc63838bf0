// Package types defines shared data structures for paper-reader: the paper
// collection schema (Paper, Insights, Candidate, Interests) and per-stage
// configuration. Storage paths are always explicit configuration values
// supplied by the caller; no package derives a default location itself.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-reader/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// StoreConfig holds settings for the paper collection store.
type StoreConfig struct {
	// DataDir is the directory holding one JSON file per paper.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// InterestsConfig holds settings for the research interest store.
type InterestsConfig struct {
	// DataDir is the directory holding interests.json.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// DiscoveryConfig holds settings for arXiv paper discovery.
type DiscoveryConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of candidates per query (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// LookbackDays is how far back discovery looks for new papers (default 7).
	LookbackDays int `json:"lookback_days" yaml:"lookback_days"`
}

// IngestConfig holds settings for PDF download and text extraction.
type IngestConfig struct {
	HTTPConfig `yaml:",inline"`

	// PDFDir is the directory where downloaded PDFs are kept.
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ExtractionConfig holds settings for the insight extraction stage.
type ExtractionConfig struct {
	AIConfig `yaml:",inline"`
}

// IndexConfig holds settings for the full-text search index.
type IndexConfig struct {
	// Path is the SQLite database file for the index.
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
