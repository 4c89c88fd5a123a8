package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-2.5-flash:generateContent" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "  hello insights  "}},
				}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key", "", time.Second)
	c.BaseURL = srv.URL

	text, err := c.Generate(context.Background(), "summarize my spending")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "hello insights" {
		t.Errorf("text = %q, want trimmed response", text)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "summarize my spending" {
		t.Errorf("prompt not forwarded, got %+v", gotBody)
	}
	if gotBody.GenerationConfig.MaxOutputTokens != 250 {
		t.Errorf("maxOutputTokens = %d, want 250", gotBody.GenerationConfig.MaxOutputTokens)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"code": 429, "message": "quota exceeded"},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key", "", time.Second)
	c.BaseURL = srv.URL

	if _, err := c.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("non-200 response should be an error")
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	c := NewClient("test-key", "", time.Second)
	c.BaseURL = srv.URL

	text, err := c.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "No response generated." {
		t.Errorf("text = %q, want fallback sentence", text)
	}
}
