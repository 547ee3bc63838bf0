// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest downloads candidate PDFs and extracts their text. Text
// extraction shells out to pdftotext behind a TextExtractor so callers and
// tests can substitute another tool.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paper-reader/internal/discover"
	"github.com/pdiddy/paper-reader/internal/httputil"
	"github.com/pdiddy/paper-reader/pkg/types"
)

// arxivPDFBase is the arXiv PDF endpoint. Declared as a var so tests can
// substitute an httptest server.
var arxivPDFBase = "https://arxiv.org/pdf/"

// ErrNotFound is returned by IngestLocal when the given path does not exist.
var ErrNotFound = errors.New("PDF not found")

// ErrNoText is returned when a PDF yields no extractable text.
var ErrNoText = errors.New("no text extracted from PDF")

// TextExtractor turns a PDF file into plain text.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// Ingestor downloads PDFs into a local directory and extracts their text.
type Ingestor struct {
	client    *http.Client
	extractor TextExtractor
	cfg       types.IngestConfig
}

// New creates an Ingestor. A nil extractor defaults to pdftotext.
func New(client *http.Client, extractor TextExtractor, cfg types.IngestConfig) (*Ingestor, error) {
	if cfg.PDFDir == "" {
		return nil, fmt.Errorf("ingest: PDF directory not configured")
	}
	if err := os.MkdirAll(cfg.PDFDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating PDF directory %s: %w", cfg.PDFDir, err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	if extractor == nil {
		extractor = PdftotextExtractor{}
	}
	return &Ingestor{client: client, extractor: extractor, cfg: cfg}, nil
}

// Ingest downloads the candidate's PDF and extracts its text. An already
// downloaded PDF is reused. It returns the local PDF path and the text.
func (g *Ingestor) Ingest(ctx context.Context, candidate *types.Candidate) (string, string, error) {
	arxivID := strings.TrimPrefix(candidate.ID, discover.IDPrefix)
	pdfPath := filepath.Join(g.cfg.PDFDir, arxivID+".pdf")

	if _, err := os.Stat(pdfPath); err != nil {
		if err := g.download(ctx, arxivPDFBase+arxivID, pdfPath); err != nil {
			return "", "", fmt.Errorf("downloading %s: %w", candidate.ID, err)
		}
	}

	text, err := g.extractText(pdfPath)
	if err != nil {
		return "", "", err
	}
	return pdfPath, text, nil
}

// IngestLocal extracts text from a PDF the user already has. It fails with
// ErrNotFound when the path does not exist.
func (g *Ingestor) IngestLocal(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return g.extractText(path)
}

func (g *Ingestor) extractText(pdfPath string) (string, error) {
	text, err := g.extractor.ExtractText(pdfPath)
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", pdfPath, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", pdfPath, ErrNoText)
	}
	return text, nil
}

// download fetches url to destPath using a temporary file, renaming on
// success so an interrupted download never leaves a partial PDF behind.
func (g *Ingestor) download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", g.cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := httputil.DoWithRetry(ctx, g.client, req, 0)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".ingest-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
