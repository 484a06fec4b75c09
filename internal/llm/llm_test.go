package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestResultVariants(t *testing.T) {
	ok := Success(json.RawMessage(`{"a": 1}`))
	if !ok.OK() {
		t.Fatalf("expected success result to be OK")
	}

	if Unavailable().OK() {
		t.Fatalf("unavailable result must not be OK")
	}
	if Failed(errors.New("boom")).OK() {
		t.Fatalf("failed result must not be OK")
	}
	if Success(nil).OK() {
		t.Fatalf("empty payload must not be OK")
	}
}

func TestResultDecode(t *testing.T) {
	var out struct {
		A int `json:"a"`
	}
	if !Success(json.RawMessage(`{"a": 7}`)).Decode(&out) || out.A != 7 {
		t.Fatalf("expected decode to succeed, got %+v", out)
	}
	if Success(json.RawMessage(`{"a": "nope"}`)).Decode(&out) {
		t.Fatalf("expected decode of mismatched payload to fail")
	}
	if Unavailable().Decode(&out) {
		t.Fatalf("expected decode of degraded result to fail")
	}
}

func TestDisabledClient(t *testing.T) {
	client := Disabled{}
	if client.Available() {
		t.Fatalf("disabled client must not be available")
	}
	res := client.GenerateJSON(context.Background(), "prompt", "system")
	if res.Status != StatusUnavailable {
		t.Fatalf("expected unavailable status, got %v", res.Status)
	}
}
