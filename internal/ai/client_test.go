package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGeminiClient_Complete(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"the answer"}]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("k123", srv.URL, "gemini-1.5-flash", 5*time.Second)

	text, err := client.Complete(context.Background(), "classify this")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != "the answer" {
		t.Errorf("Complete() = %q, want %q", text, "the answer")
	}

	if !strings.Contains(gotPath, "/models/gemini-1.5-flash:generateContent") || !strings.Contains(gotPath, "key=k123") {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "classify this" {
		t.Errorf("prompt not forwarded: %+v", gotBody.Contents)
	}
	// Every call must disable the provider's safety filter.
	if len(gotBody.SafetySettings) != 4 {
		t.Fatalf("got %d safety settings, want 4", len(gotBody.SafetySettings))
	}
	for _, s := range gotBody.SafetySettings {
		if s.Threshold != "BLOCK_NONE" {
			t.Errorf("category %s threshold = %q, want BLOCK_NONE", s.Category, s.Threshold)
		}
	}
}

func TestGeminiClient_NoAPIKey(t *testing.T) {
	client := NewGeminiClient("", "http://unused", "gemini-1.5-flash", time.Second)

	if _, err := client.Complete(context.Background(), "hi"); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("Complete() error = %v, want ErrNoAPIKey", err)
	}
}

func TestGeminiClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("k", srv.URL, "gemini-1.5-flash", time.Second)

	_, err := client.Complete(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Complete() error = %v, want quota message surfaced", err)
	}
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("k", srv.URL, "gemini-1.5-flash", time.Second)

	if _, err := client.Complete(context.Background(), "hi"); err == nil {
		t.Error("Complete() accepted an empty candidate list")
	}
}

func TestGeminiClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewGeminiClient("k", srv.URL, "gemini-1.5-flash", 50*time.Millisecond)

	if _, err := client.Complete(context.Background(), "hi"); err == nil {
		t.Error("Complete() did not time out")
	}
}
