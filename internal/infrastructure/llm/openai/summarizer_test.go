package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

func TestSummarizeWithoutAPIKeyReportsUnavailable(t *testing.T) {
	s := NewSummarizer(Config{Model: "gpt-3.5-turbo"}, nil)

	if s.Available() {
		t.Fatalf("expected unavailable without api key")
	}
	_, err := s.Summarize(context.Background(), "text", "Summarize:", 300)
	if !domain.IsKind(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestSummarizeReturnsTrimmedCompletion(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": "  a tidy summary \n"},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	s := NewSummarizer(Config{
		APIKey:      "test-key",
		BaseURL:     server.URL + "/v1",
		Model:       "gpt-3.5-turbo",
		Temperature: 0.2,
	}, nil)
	if !s.Available() {
		t.Fatalf("expected available with api key")
	}

	got, err := s.Summarize(context.Background(), "long document text", "Summarize the following document:", 400)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "a tidy summary" {
		t.Fatalf("expected trimmed completion, got %q", got)
	}
	if gotBody["max_tokens"] != float64(400) {
		t.Fatalf("expected bounded max_tokens, got %v", gotBody["max_tokens"])
	}
	if gotBody["temperature"] != 0.2 {
		t.Fatalf("expected low fixed temperature, got %v", gotBody["temperature"])
	}
}

func TestSummarizeProviderErrorReportsSummarizationFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := NewSummarizer(Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Model:   "gpt-3.5-turbo",
	}, nil)

	_, err := s.Summarize(context.Background(), "text", "Summarize:", 300)
	if !domain.IsKind(err, domain.ErrSummarizationFailed) {
		t.Fatalf("expected ErrSummarizationFailed, got %v", err)
	}
}

func TestSummarizeEmptyChoicesReportsSummarizationFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "cmpl-2", "object": "chat.completion", "choices": []any{}})
	}))
	defer server.Close()

	s := NewSummarizer(Config{APIKey: "test-key", BaseURL: server.URL + "/v1", Model: "gpt-3.5-turbo"}, nil)

	_, err := s.Summarize(context.Background(), "text", "Summarize:", 300)
	if !domain.IsKind(err, domain.ErrSummarizationFailed) {
		t.Fatalf("expected ErrSummarizationFailed, got %v", err)
	}
}
