// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns raw paper text into structured insights via a single
// Generative AI call: prompt construction, invocation, and all-or-nothing
// parsing of the (possibly markdown-fenced) JSON response.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/paper-reader/pkg/types"
)

// Generator abstracts the text-generation API so tests can supply a mock.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Extractor produces Insights for a paper through a Generator.
type Extractor struct {
	gen Generator
}

// New creates an Extractor backed by the given generator.
func New(gen Generator) *Extractor {
	return &Extractor{gen: gen}
}

// Extract builds the prompt for (title, fullText), invokes the generator,
// and parses the response into Insights. Any generation or parsing failure
// is returned as a single wrapped error; no partial Insights value is ever
// produced.
func (e *Extractor) Extract(ctx context.Context, title, fullText string) (*types.Insights, error) {
	prompt := BuildPrompt(title, fullText)

	response, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extracting insights: %w", err)
	}

	insights, err := parseInsights(response)
	if err != nil {
		return nil, fmt.Errorf("parsing insights response: %w", err)
	}
	return insights, nil
}

// rawInsights mirrors the response schema with pointer fields so missing
// keys are distinguishable from empty values.
type rawInsights struct {
	Problem          *string   `json:"problem"`
	Method           *string   `json:"method"`
	KeyResults       *string   `json:"key_results"`
	Contributions    *[]string `json:"contributions"`
	RelatedWork      *[]string `json:"related_work"`
	FutureDirections *[]string `json:"future_directions"`
	Classification   *string   `json:"classification"`
}

// parseInsights extracts the JSON payload from a model response and decodes
// it. All seven keys must be present; classification is passed through
// without enum validation.
func parseInsights(response string) (*types.Insights, error) {
	payload := extractJSON(response)

	var raw rawInsights
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	missing := missingKeys(raw)
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing keys: %s", strings.Join(missing, ", "))
	}

	return &types.Insights{
		Problem:          *raw.Problem,
		Method:           *raw.Method,
		KeyResults:       *raw.KeyResults,
		Contributions:    *raw.Contributions,
		RelatedWork:      *raw.RelatedWork,
		FutureDirections: *raw.FutureDirections,
		Classification:   types.Classification(*raw.Classification),
	}, nil
}

func missingKeys(raw rawInsights) []string {
	var missing []string
	if raw.Problem == nil {
		missing = append(missing, "problem")
	}
	if raw.Method == nil {
		missing = append(missing, "method")
	}
	if raw.KeyResults == nil {
		missing = append(missing, "key_results")
	}
	if raw.Contributions == nil {
		missing = append(missing, "contributions")
	}
	if raw.RelatedWork == nil {
		missing = append(missing, "related_work")
	}
	if raw.FutureDirections == nil {
		missing = append(missing, "future_directions")
	}
	if raw.Classification == nil {
		missing = append(missing, "classification")
	}
	return missing
}

// extractJSON pulls the JSON payload out of a model response. Strategies are
// tried in order, first match wins: a ```json fence, then any bare ```
// fence, then the whole trimmed response.
func extractJSON(response string) string {
	if payload, ok := fencedBlock(response, "```json"); ok {
		return payload
	}
	if payload, ok := fencedBlock(response, "```"); ok {
		return payload
	}
	return strings.TrimSpace(response)
}

// fencedBlock returns the content between the first occurrence of the
// opening fence and the next closing ``` fence.
func fencedBlock(response, open string) (string, bool) {
	start := strings.Index(response, open)
	if start < 0 {
		return "", false
	}
	rest := response[start+len(open):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}
