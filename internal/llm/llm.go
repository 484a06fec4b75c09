package llm

import (
	"context"
	"encoding/json"
)

// Client abstracts the generative provider for JSON-structured completions.
// Implementations are selected once at startup: a configured provider makes
// real calls, Disabled always reports the degraded path.
type Client interface {
	// Available reports whether the provider can be called at all.
	Available() bool
	// GenerateJSON asks the provider for a JSON-object completion. The
	// returned Result is never an error to the caller: unavailability and
	// call failures are explicit variants so every call site handles the
	// degraded path.
	GenerateJSON(ctx context.Context, prompt, systemPrompt string) Result
}

// Status discriminates Result variants.
type Status int

const (
	StatusOK Status = iota
	StatusUnavailable
	StatusFailed
)

// Result carries a provider response or the reason there is none.
type Result struct {
	Status Status
	Raw    json.RawMessage
	Err    error
}

// OK reports whether the result carries usable JSON.
func (r Result) OK() bool {
	return r.Status == StatusOK && len(r.Raw) > 0
}

// Decode unmarshals the raw response into v. It returns false when the
// result is degraded or the payload does not fit v.
func (r Result) Decode(v any) bool {
	if !r.OK() {
		return false
	}
	return json.Unmarshal(r.Raw, v) == nil
}

// Success wraps a raw JSON payload.
func Success(raw json.RawMessage) Result {
	return Result{Status: StatusOK, Raw: raw}
}

// Unavailable marks a call skipped because no provider is configured.
func Unavailable() Result {
	return Result{Status: StatusUnavailable}
}

// Failed marks a call that was attempted and did not yield usable JSON.
func Failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

// Disabled is the stub client used when no API key is configured.
type Disabled struct{}

// Available always reports false.
func (Disabled) Available() bool { return false }

// GenerateJSON always returns the unavailable variant.
func (Disabled) GenerateJSON(ctx context.Context, prompt, systemPrompt string) Result {
	_ = ctx
	_ = prompt
	_ = systemPrompt
	return Unavailable()
}

var _ Client = Disabled{}
