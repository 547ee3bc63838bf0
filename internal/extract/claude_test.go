package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClaudeBackendGenerate(t *testing.T) {
	var gotReq claudeRequest
	var gotAPIKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(claudeResponse{
			Content: []claudeContent{{Type: "text", Text: "generated insights"}},
		})
	}))
	defer srv.Close()

	oldURL := claudeAPIURL
	claudeAPIURL = srv.URL
	defer func() { claudeAPIURL = oldURL }()

	backend := &ClaudeBackend{APIKey: "test-key", Model: "test-model", Client: srv.Client()}
	text, err := backend.Generate(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if text != "generated insights" {
		t.Errorf("text = %q", text)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("x-api-key = %q", gotAPIKey)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.MaxTokens != maxResponseTokens {
		t.Errorf("max_tokens = %d, want %d", gotReq.MaxTokens, maxResponseTokens)
	}
	if gotReq.Temperature != temperature {
		t.Errorf("temperature = %f, want %f", gotReq.Temperature, temperature)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "the prompt" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestClaudeBackendHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	oldURL := claudeAPIURL
	claudeAPIURL = srv.URL
	defer func() { claudeAPIURL = oldURL }()

	backend := &ClaudeBackend{APIKey: "k", Model: "m", Client: srv.Client()}
	_, err := backend.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for HTTP 503")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error should mention the status: %v", err)
	}
}

func TestClaudeBackendNoTextContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(claudeResponse{
			Content: []claudeContent{{Type: "tool_use", Text: ""}},
		})
	}))
	defer srv.Close()

	oldURL := claudeAPIURL
	claudeAPIURL = srv.URL
	defer func() { claudeAPIURL = oldURL }()

	backend := &ClaudeBackend{APIKey: "k", Model: "m", Client: srv.Client()}
	_, err := backend.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error when response has no text block")
	}
}
