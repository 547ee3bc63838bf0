// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover finds candidate papers on arXiv matching the user's
// research interests. It builds the search query, pages through the Atom
// feed, and maps entries to Candidates; nothing here touches the collection.
package discover

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/paper-reader/internal/httputil"
	"github.com/pdiddy/paper-reader/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// IDPrefix namespaces arXiv identifiers in the collection (e.g. "arxiv:2301.12345").
const IDPrefix = "arxiv:"

// Discoverer queries the arXiv API.
type Discoverer struct {
	client *http.Client
	cfg    types.DiscoveryConfig
}

// New creates a Discoverer using the given HTTP client and settings.
func New(client *http.Client, cfg types.DiscoveryConfig) *Discoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Discoverer{client: client, cfg: cfg}
}

// Discover returns recent candidates matching the interests, newest first.
// Papers published before the lookback window are filtered out.
func (d *Discoverer) Discover(ctx context.Context, interests *types.Interests, days, maxResults int) ([]*types.Candidate, error) {
	if days <= 0 {
		days = d.cfg.LookbackDays
	}
	if maxResults <= 0 {
		maxResults = d.cfg.MaxResults
	}

	params := url.Values{}
	params.Set("search_query", BuildQuery(interests))
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	feed, err := d.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	var candidates []*types.Candidate
	for _, entry := range feed.Entries {
		c := toCandidate(entry)
		if c == nil {
			continue
		}
		if t, err := time.Parse(time.RFC3339, entry.Published); err == nil && t.Before(cutoff) {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// GetByID fetches a single candidate by arXiv ID. The ID may carry the
// "arxiv:" prefix or not. An unknown ID returns (nil, nil).
func (d *Discoverer) GetByID(ctx context.Context, id string) (*types.Candidate, error) {
	clean := strings.TrimPrefix(id, IDPrefix)

	params := url.Values{}
	params.Set("id_list", clean)
	params.Set("max_results", "1")

	feed, err := d.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	for _, entry := range feed.Entries {
		if c := toCandidate(entry); c != nil {
			return c, nil
		}
	}
	return nil, nil
}

func (d *Discoverer) fetch(ctx context.Context, params url.Values) (*arxivFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", d.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, d.client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return &feed, nil
}

// BuildQuery constructs the arXiv search_query from research interests.
// Categories form one OR group; topics (or areas, when no topics are set)
// form a title/abstract OR group; groups are joined with AND. With no
// interests at all the query matches everything.
func BuildQuery(interests *types.Interests) string {
	if interests == nil {
		return "all:*"
	}

	var parts []string

	if len(interests.Categories) > 0 {
		cats := make([]string, len(interests.Categories))
		for i, cat := range interests.Categories {
			cats[i] = "cat:" + cat
		}
		parts = append(parts, "("+strings.Join(cats, " OR ")+")")
	}

	terms := interests.Topics
	if len(terms) == 0 {
		terms = interests.Areas
	}
	if len(terms) > 0 {
		queries := make([]string, len(terms))
		for i, term := range terms {
			queries[i] = fmt.Sprintf("(ti:%q OR abs:%q)", term, term)
		}
		parts = append(parts, "("+strings.Join(queries, " OR ")+")")
	}

	if len(parts) == 0 {
		return "all:*"
	}
	return strings.Join(parts, " AND ")
}

func toCandidate(entry arxivEntry) *types.Candidate {
	arxivID := extractArxivID(entry.ID)
	if arxivID == "" {
		return nil
	}

	c := &types.Candidate{
		ID:            IDPrefix + arxivID,
		Title:         strings.TrimSpace(entry.Title),
		Abstract:      strings.TrimSpace(entry.Summary),
		URL:           entry.ID,
		PublishedDate: entry.Published,
	}
	for _, a := range entry.Authors {
		c.Authors = append(c.Authors, strings.TrimSpace(a.Name))
	}
	for _, cat := range entry.Categories {
		if cat.Term != "" {
			c.Categories = append(c.Categories, cat.Term)
		}
	}
	return c
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID         string          `xml:"id"`
	Title      string          `xml:"title"`
	Summary    string          `xml:"summary"`
	Published  string          `xml:"published"`
	Authors    []arxivAuthor   `xml:"author"`
	Categories []arxivCategory `xml:"category"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041").
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := idURL[idx+len(prefix):]

	// Strip version suffix (e.g. "v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
