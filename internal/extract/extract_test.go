package extract

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/paper-reader/pkg/types"
)

// --- mock generator ---

type mockGenerator struct {
	response string
	err      error
	prompts  []string
}

func (m *mockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

const sampleJSON = `{
  "problem": "Long sequences are expensive.",
  "method": "Sparse attention patterns.",
  "key_results": "10x speedup at equal quality.",
  "contributions": ["pattern design", "kernel"],
  "related_work": ["Transformer", "Longformer"],
  "future_directions": ["learned sparsity"],
  "classification": "foundational"
}`

func wantInsights() *types.Insights {
	return &types.Insights{
		Problem:          "Long sequences are expensive.",
		Method:           "Sparse attention patterns.",
		KeyResults:       "10x speedup at equal quality.",
		Contributions:    []string{"pattern design", "kernel"},
		RelatedWork:      []string{"Transformer", "Longformer"},
		FutureDirections: []string{"learned sparsity"},
		Classification:   types.Foundational,
	}
}

func insightsEqual(a, b *types.Insights) bool {
	return a.Problem == b.Problem &&
		a.Method == b.Method &&
		a.KeyResults == b.KeyResults &&
		strings.Join(a.Contributions, "|") == strings.Join(b.Contributions, "|") &&
		strings.Join(a.RelatedWork, "|") == strings.Join(b.RelatedWork, "|") &&
		strings.Join(a.FutureDirections, "|") == strings.Join(b.FutureDirections, "|") &&
		a.Classification == b.Classification
}

// --- BuildPrompt ---

func TestBuildPromptEmbedsTitleAndText(t *testing.T) {
	prompt := BuildPrompt("Attention Is All You Need", "We propose the Transformer.")

	if !strings.Contains(prompt, "Attention Is All You Need") {
		t.Error("prompt should contain the title")
	}
	if !strings.Contains(prompt, "We propose the Transformer.") {
		t.Error("prompt should contain the paper text")
	}
	if strings.Contains(prompt, truncationMarker) {
		t.Error("short text should not be marked truncated")
	}
	for _, field := range []string{"problem", "method", "key_results", "contributions", "related_work", "future_directions", "classification"} {
		if !strings.Contains(prompt, field) {
			t.Errorf("prompt should request field %q", field)
		}
	}
}

func TestBuildPromptTruncatesLongText(t *testing.T) {
	longText := strings.Repeat("x", 10000)
	prompt := BuildPrompt("Some Title", longText)

	if !strings.Contains(prompt, truncationMarker) {
		t.Error("prompt should contain the truncation marker")
	}
	overhead := len(BuildPrompt("Some Title", ""))
	if len(prompt) >= 10000+overhead {
		t.Errorf("prompt length %d: full text must not be embedded", len(prompt))
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	a := BuildPrompt("Title", "text body")
	b := BuildPrompt("Title", "text body")
	if a != b {
		t.Error("BuildPrompt must be a pure function of its inputs")
	}
}

// --- parseInsights ---

func TestParseInsightsFenceVariants(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"plain JSON", sampleJSON},
		{"json fence", "Here are the insights:\n```json\n" + sampleJSON + "\n```\nDone."},
		{"bare fence", "```\n" + sampleJSON + "\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInsights(tt.response)
			if err != nil {
				t.Fatalf("parseInsights() error: %v", err)
			}
			if !insightsEqual(got, wantInsights()) {
				t.Errorf("parseInsights() = %+v, want %+v", got, wantInsights())
			}
		})
	}
}

func TestParseInsightsInvalidJSON(t *testing.T) {
	_, err := parseInsights("I could not analyze this paper, sorry.")
	if err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

func TestParseInsightsMissingKeys(t *testing.T) {
	_, err := parseInsights(`{"problem": "p", "method": "m"}`)
	if err == nil {
		t.Fatal("expected error for missing keys")
	}
	for _, key := range []string{"key_results", "contributions", "related_work", "future_directions", "classification"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error should name missing key %q: %v", key, err)
		}
	}
}

func TestParseInsightsPermissiveClassification(t *testing.T) {
	response := strings.Replace(sampleJSON, "foundational", "survey", 1)
	got, err := parseInsights(response)
	if err != nil {
		t.Fatalf("parseInsights() error: %v", err)
	}
	if got.Classification != "survey" {
		t.Errorf("classification = %q, want pass-through of %q", got.Classification, "survey")
	}
}

// --- Extract ---

func TestExtract(t *testing.T) {
	gen := &mockGenerator{response: "```json\n" + sampleJSON + "\n```"}
	e := New(gen)

	got, err := e.Extract(context.Background(), "Sparse Attention", "paper text")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if !insightsEqual(got, wantInsights()) {
		t.Errorf("Extract() = %+v, want %+v", got, wantInsights())
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Sparse Attention") {
		t.Error("generator should receive one prompt containing the title")
	}
}

func TestExtractWrapsGeneratorError(t *testing.T) {
	cause := fmt.Errorf("API timeout")
	e := New(&mockGenerator{err: cause})

	_, err := e.Extract(context.Background(), "Title", "text")
	if err == nil {
		t.Fatal("expected error when generation fails")
	}
	if !strings.Contains(err.Error(), "API timeout") {
		t.Errorf("error should wrap the cause: %v", err)
	}
}

func TestExtractWrapsParseError(t *testing.T) {
	e := New(&mockGenerator{response: "no json here"})

	_, err := e.Extract(context.Background(), "Title", "text")
	if err == nil {
		t.Fatal("expected error for unparseable response")
	}
	if !strings.Contains(err.Error(), "parsing insights response") {
		t.Errorf("error should identify the parsing stage: %v", err)
	}
}

// --- extractJSON ---

func TestExtractJSONPriority(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"json fence wins over bare", "```\nignored\n```\n```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "preamble ```\n{\"a\":1}\n``` trailer", `{"a":1}`},
		{"whole response", "  {\"a\":1}  ", `{"a":1}`},
		{"unclosed fence falls through", "```json {\"a\":1}", "```json {\"a\":1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.response); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
