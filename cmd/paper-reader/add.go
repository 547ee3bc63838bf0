// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-reader/internal/discover"
	"github.com/pdiddy/paper-reader/internal/extract"
	"github.com/pdiddy/paper-reader/internal/ingest"
	"github.com/pdiddy/paper-reader/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <arxiv-id>",
	Short: "Add a paper to the collection with extracted insights",
	Long: `Add fetches the paper's metadata from arXiv, downloads its PDF (or
reads one you already have via --pdf), extracts the text, asks the model
for structured insights, and saves the paper with status "to-read".`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("pdf", "", "use a local PDF instead of downloading")
	addCmd.Flags().String("model", "", "AI model identifier for insight extraction")
	addCmd.Flags().String("api-key", "", "Claude API key (default: .secrets/anthropic-api-key)")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	id := args[0]
	localPDF, _ := cmd.Flags().GetString("pdf")
	model, _ := cmd.Flags().GetString("model")
	apiKey, _ := cmd.Flags().GetString("api-key")

	if model == "" {
		model = viper.GetString("model")
	}
	if model == "" {
		model = defaultModel
	}
	apiKey = secretDefault("anthropic-api-key", apiKey)
	if apiKey == "" {
		return fmt.Errorf("no Claude API key: pass --api-key or create .secrets/anthropic-api-key")
	}

	ctx := context.Background()
	client := newHTTPClient()

	fmt.Printf("Fetching paper %s from arXiv...\n", id)
	d := discover.New(client, types.DiscoveryConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: defaultUserAgent},
	})
	candidate, err := d.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if candidate == nil {
		return fmt.Errorf("paper %s not found on arXiv", id)
	}

	ingestor, err := ingest.New(client, nil, types.IngestConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: defaultUserAgent},
		PDFDir:     filepath.Join(dataDir(), "pdfs"),
	})
	if err != nil {
		return err
	}

	var pdfPath, text string
	if localPDF != "" {
		pdfPath = localPDF
		text, err = ingestor.IngestLocal(localPDF)
	} else {
		fmt.Println("Downloading PDF...")
		pdfPath, text, err = ingestor.Ingest(ctx, candidate)
	}
	if err != nil {
		return err
	}

	fmt.Println("Extracting insights with AI...")
	extractor := extract.New(&extract.ClaudeBackend{
		APIKey: apiKey,
		Model:  model,
		Client: client,
	})
	insights, err := extractor.Extract(ctx, candidate.Title, text)
	if err != nil {
		return err
	}

	var tags []string
	if mgr, mgrErr := openInterests(); mgrErr == nil {
		if in, ok := mgr.Load(); ok {
			tags = in.Topics
		}
	}

	paper := &types.Paper{
		ID:        candidate.ID,
		Title:     candidate.Title,
		Authors:   candidate.Authors,
		URL:       candidate.URL,
		PDFPath:   pdfPath,
		AddedDate: time.Now().Format(time.RFC3339),
		Interests: tags,
		Insights:  *insights,
		Status:    types.StatusToRead,
		Notes:     "",
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	if err := s.Add(paper); err != nil {
		return err
	}

	fmt.Println("\nPaper added.")
	fmt.Printf("  Title:          %s\n", paper.Title)
	fmt.Printf("  Problem:        %s\n", clip(insights.Problem, 100))
	fmt.Printf("  Classification: %s\n", insights.Classification)
	return nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
