// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-reader/pkg/types"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Open(types.IndexConfig{Path: filepath.Join(t.TempDir(), "index.db")})
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func indexedPapers() []*types.Paper {
	return []*types.Paper{
		{
			ID:    "arxiv:2301.00001",
			Title: "Sparse Attention Mechanisms",
			Insights: types.Insights{
				Problem:    "Quadratic attention cost limits long sequences.",
				Method:     "Sparse attention patterns over fixed strides.",
				KeyResults: "Matches dense quality at a fraction of the cost.",
			},
			Notes: "Worth re-reading before the survey.",
		},
		{
			ID:    "arxiv:2302.00002",
			Title: "Channel Estimation with Diffusion Models",
			Insights: types.Insights{
				Problem:    "Pilot overhead dominates in massive MIMO.",
				Method:     "Diffusion prior over channel realizations.",
				KeyResults: "Halves pilot overhead at equal NMSE.",
			},
		},
	}
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(types.IndexConfig{})
	require.Error(t, err)
}

func TestReindexAndQuery(t *testing.T) {
	idx := openTestIndex(t)
	ctx := context.Background()
	require.NoError(t, idx.Reindex(ctx, indexedPapers()))

	hits, err := idx.Query(ctx, "diffusion", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "arxiv:2302.00002", hits[0].PaperID)
	assert.Equal(t, "Channel Estimation with Diffusion Models", hits[0].Title)
	assert.Contains(t, hits[0].Snippet, "[Diffusion]")
}

func TestQueryMatchesNotes(t *testing.T) {
	idx := openTestIndex(t)
	ctx := context.Background()
	require.NoError(t, idx.Reindex(ctx, indexedPapers()))

	hits, err := idx.Query(ctx, "survey", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "arxiv:2301.00001", hits[0].PaperID)
}

func TestQueryEmptyString(t *testing.T) {
	idx := openTestIndex(t)
	_, err := idx.Query(context.Background(), "", 0)
	require.Error(t, err)
}

func TestQueryLimit(t *testing.T) {
	idx := openTestIndex(t)
	ctx := context.Background()
	require.NoError(t, idx.Reindex(ctx, indexedPapers()))

	// Matches both rows; the limit keeps only the top-ranked one.
	hits, err := idx.Query(ctx, "cost OR overhead", 1)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestReindexReplacesContents(t *testing.T) {
	idx := openTestIndex(t)
	ctx := context.Background()
	require.NoError(t, idx.Reindex(ctx, indexedPapers()))

	// Reindexing with a subset drops the rest.
	require.NoError(t, idx.Reindex(ctx, indexedPapers()[:1]))

	hits, err := idx.Query(ctx, "diffusion", 0)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = idx.Query(ctx, "sparse", 0)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestQueryOnEmptyIndex(t *testing.T) {
	idx := openTestIndex(t)
	hits, err := idx.Query(context.Background(), "anything", 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
