// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReadStatus tracks where a paper sits in the user's reading queue.
type ReadStatus string

const (
	StatusToRead  ReadStatus = "to-read"
	StatusReading ReadStatus = "reading"
	StatusRead    ReadStatus = "read"
)

// ValidStatus reports whether s is one of the known reading statuses.
func ValidStatus(s ReadStatus) bool {
	switch s {
	case StatusToRead, StatusReading, StatusRead:
		return true
	}
	return false
}

// Classification labels a paper as introducing new concepts or improving
// existing work. The extraction pipeline passes the model's value through
// without rejecting unknown labels.
type Classification string

const (
	Foundational Classification = "foundational"
	Incremental  Classification = "incremental"
)

// Insights is the structured summary extracted from one paper. All seven
// fields are always present; narrative fields may degenerate to empty
// strings and list fields to empty lists.
type Insights struct {
	// Problem describes the problem or research question the paper addresses.
	Problem string `json:"problem" yaml:"problem"`

	// Method describes the approach the paper takes.
	Method string `json:"method" yaml:"method"`

	// KeyResults summarizes the main findings.
	KeyResults string `json:"key_results" yaml:"key_results"`

	// Contributions lists the key contributions.
	Contributions []string `json:"contributions" yaml:"contributions"`

	// RelatedWork lists referenced papers or research areas.
	RelatedWork []string `json:"related_work" yaml:"related_work"`

	// FutureDirections lists suggested future work.
	FutureDirections []string `json:"future_directions" yaml:"future_directions"`

	// Classification is "foundational" or "incremental".
	Classification Classification `json:"classification" yaml:"classification"`
}

// Paper is one committed entry in the user's collection.
type Paper struct {
	// ID is a namespaced identifier (e.g. "arxiv:2301.12345"), unique
	// within the collection and stable across updates.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// URL points at the paper (abstract page or PDF).
	URL string `json:"url" yaml:"url"`

	// PDFPath is the local path to the retained PDF, empty when none was kept.
	PDFPath string `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`

	// AddedDate records when the paper entered the collection (ISO-8601).
	AddedDate string `json:"added_date" yaml:"added_date"`

	// Interests holds the free-text tags active when the paper was added.
	Interests []string `json:"interests" yaml:"interests"`

	// Insights is the extracted structured summary.
	Insights Insights `json:"insights" yaml:"insights"`

	// Status is the reading status. Any value may be set at any time.
	Status ReadStatus `json:"status" yaml:"status"`

	// Notes holds the user's free-text notes.
	Notes string `json:"notes" yaml:"notes"`
}

// Candidate is a paper returned by discovery before it is committed to the
// collection. Candidates are never persisted directly.
type Candidate struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Authors       []string `json:"authors" yaml:"authors"`
	Abstract      string   `json:"abstract" yaml:"abstract"`
	URL           string   `json:"url" yaml:"url"`
	PublishedDate string   `json:"published_date" yaml:"published_date"`

	// Categories holds the arXiv category terms (e.g. "cs.LG").
	Categories []string `json:"arxiv_categories" yaml:"arxiv_categories"`
}

// Interests holds the user's research interests used to drive discovery.
type Interests struct {
	// Areas are broad research areas (e.g. "deep learning").
	Areas []string `json:"areas" yaml:"areas"`

	// Topics are narrow interests (e.g. "attention mechanisms").
	Topics []string `json:"topics" yaml:"topics"`

	// Categories are arXiv category codes (e.g. "cs.LG").
	Categories []string `json:"arxiv_categories" yaml:"arxiv_categories"`
}
