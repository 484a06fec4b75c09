package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-insight/internal/llm"
)

func chatCompletion(content string) string {
	resp := map[string]any{
		"id":    "chatcmpl-1",
		"model": "test-model",
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestGenerateJSONSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ResponseFormat.Type != "json_object" {
			t.Errorf("expected json_object response format, got %q", req.ResponseFormat.Type)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletion(`{"answer": 42}`)))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL, "test-model")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	res := client.GenerateJSON(context.Background(), "prompt", "system")
	if !res.OK() {
		t.Fatalf("expected OK result, got status %v err %v", res.Status, res.Err)
	}
	var decoded struct {
		Answer int `json:"answer"`
	}
	if !res.Decode(&decoded) || decoded.Answer != 42 {
		t.Fatalf("unexpected payload: %s", res.Raw)
	}
}

func TestGenerateJSONStripsFences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletion("```json\n{\"answer\": 1}\n```")))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL, "test-model")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	res := client.GenerateJSON(context.Background(), "prompt", "system")
	if !res.OK() {
		t.Fatalf("expected OK result, got status %v err %v", res.Status, res.Err)
	}
	if string(res.Raw) != `{"answer": 1}` {
		t.Fatalf("unexpected payload: %s", res.Raw)
	}
}

func TestGenerateJSONHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL, "test-model")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	res := client.GenerateJSON(context.Background(), "prompt", "system")
	if res.Status != llm.StatusFailed {
		t.Fatalf("expected failed status, got %v", res.Status)
	}
	if res.Err == nil {
		t.Fatalf("expected error on failed result")
	}
}

func TestGenerateJSONInvalidPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletion("this is not json")))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL, "test-model")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	res := client.GenerateJSON(context.Background(), "prompt", "system")
	if res.Status != llm.StatusFailed {
		t.Fatalf("expected failed status for non-JSON content, got %v", res.Status)
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "http://x", "model"); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("key", "http://x", ""); err == nil {
		t.Fatalf("expected error for missing model")
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tc := range cases {
		if got := stripCodeFences(tc.in); got != tc.want {
			t.Fatalf("stripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
