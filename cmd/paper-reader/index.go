// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-reader/internal/index"
	"github.com/pdiddy/paper-reader/pkg/types"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the full-text search index from the collection",
	Long: `Reindex rebuilds the SQLite FTS5 index over titles, insights, and notes.
The index only serves the 'query' command; the plain 'search' command
always scans the collection directly.`,
	RunE: runReindex,
}

var queryCmd = &cobra.Command{
	Use:   "query <fts-query>",
	Short: "Run a ranked full-text query against the index",
	Long: `Query matches the FTS5 query string against the index built by
'paper-reader reindex' and prints ranked hits with snippets.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().Int("max-results", 20, "maximum number of hits")

	rootCmd.AddCommand(reindexCmd, queryCmd)
}

func openIndex(maxResults int) (*index.Index, error) {
	return index.Open(types.IndexConfig{
		Path:       filepath.Join(dataDir(), "index.db"),
		MaxResults: maxResults,
	})
}

func runReindex(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	papers, err := s.ListAll()
	if err != nil {
		return err
	}

	idx, err := openIndex(0)
	if err != nil {
		return err
	}
	defer idx.Close()

	if err := idx.Reindex(context.Background(), papers); err != nil {
		return err
	}
	fmt.Printf("Indexed %d papers.\n", len(papers))
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	maxResults, _ := cmd.Flags().GetInt("max-results")

	idx, err := openIndex(maxResults)
	if err != nil {
		return err
	}
	defer idx.Close()

	hits, err := idx.Query(context.Background(), args[0], maxResults)
	if err != nil {
		return err
	}

	if len(hits) == 0 {
		fmt.Println("No hits. Run 'paper-reader reindex' if the collection changed.")
		return nil
	}
	for _, h := range hits {
		fmt.Printf("- %s (%s)\n", h.Title, h.PaperID)
		fmt.Printf("  %s\n", h.Snippet)
	}
	return nil
}
