package analysis

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"resume-insight/internal/llm"
)

type stubLLM struct {
	available bool
	result    llm.Result
	calls     int
}

func (s *stubLLM) Available() bool { return s.available }

func (s *stubLLM) GenerateJSON(ctx context.Context, prompt, systemPrompt string) llm.Result {
	s.calls++
	return s.result
}

const sampleResume = `Jane Doe
Work Experience
- Increased revenue by 40% across 3 regions
- Led migration of 12 services
Education
BSc Computer Science
Skills
Python, Go, PostgreSQL
`

func TestAnalyzeWithoutJobDescription(t *testing.T) {
	svc := NewService(llm.Disabled{}, LexicalMatcher{})

	result := svc.Analyze(context.Background(), sampleResume, "")

	if result.ScoreBreakdown.SkillsMatch != 50 {
		t.Fatalf("expected neutral skills match 50, got %v", result.ScoreBreakdown.SkillsMatch)
	}
	if len(result.SectionScores) != 0 {
		t.Fatalf("expected no section scores without a job description, got %v", result.SectionScores)
	}
	// 5 digits in the experience section, doubled and scaled by 5.
	if result.ScoreBreakdown.ContentImpact != 50 {
		t.Fatalf("expected content impact 50, got %v", result.ScoreBreakdown.ContentImpact)
	}
	if result.TotalScore == 0 {
		t.Fatalf("expected a positive total score")
	}
}

func TestAnalyzeWithJobDescription(t *testing.T) {
	svc := NewService(llm.Disabled{}, LexicalMatcher{})

	result := svc.Analyze(context.Background(), sampleResume, "Looking for Python and PostgreSQL experience")

	if len(result.SectionScores) == 0 {
		t.Fatalf("expected section scores with a job description")
	}
	if result.ScoreBreakdown.SkillsMatch == 50 {
		t.Fatalf("expected computed skills match, got the neutral default")
	}
	for key, v := range result.SectionScores {
		if v < 0 || v > 100 {
			t.Fatalf("section %q score out of range: %v", key, v)
		}
	}
}

type failingMatcher struct{}

func (failingMatcher) SectionScores(ctx context.Context, sections map[string]string, jobDescription string) (map[string]float64, error) {
	return nil, context.DeadlineExceeded
}

func TestAnalyzeMatcherFailureDegrades(t *testing.T) {
	svc := NewService(llm.Disabled{}, failingMatcher{})

	result := svc.Analyze(context.Background(), sampleResume, "some job description")

	if result.ScoreBreakdown.SkillsMatch != 50 {
		t.Fatalf("expected neutral skills match after matcher failure, got %v", result.ScoreBreakdown.SkillsMatch)
	}
	if len(result.SectionScores) != 0 {
		t.Fatalf("expected empty section scores after matcher failure, got %v", result.SectionScores)
	}
}

func TestAnalyzeBulletCritique(t *testing.T) {
	raw := `{"bullets": [
		{"text": "Did stuff", "score": 40, "suggestion": "Quantify the outcome"},
		{"text": "Increased revenue by 40%", "score": 85, "suggestion": ""}
	]}`
	client := &stubLLM{available: true, result: llm.Success(json.RawMessage(raw))}
	svc := NewService(client, LexicalMatcher{})

	result := svc.Analyze(context.Background(), sampleResume, "")

	if len(result.BulletAnalysis) != 2 {
		t.Fatalf("expected 2 bullets, got %d", len(result.BulletAnalysis))
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", client.calls)
	}
	if len(result.Insights) != 1 || result.Insights[0] != "Found 1 weak bullet points. See detailed analysis for fixes." {
		t.Fatalf("unexpected insights: %v", result.Insights)
	}
}

func TestAnalyzeStrongBulletsYieldSuggestions(t *testing.T) {
	raw := `{"bullets": [
		{"text": "a", "score": 90, "suggestion": "Lead with the metric"},
		{"text": "b", "score": 80, "suggestion": ""},
		{"text": "c", "score": 75, "suggestion": "Name the technology"}
	]}`
	client := &stubLLM{available: true, result: llm.Success(json.RawMessage(raw))}
	svc := NewService(client, LexicalMatcher{})

	result := svc.Analyze(context.Background(), sampleResume, "")

	if len(result.Insights) != 1 {
		t.Fatalf("expected 1 suggestion insight, got %v", result.Insights)
	}
	if result.Insights[0] != "Improvement Idea: Lead with the metric" {
		t.Fatalf("unexpected insight: %q", result.Insights[0])
	}
}

func TestAnalyzeMalformedCritiqueFallsBack(t *testing.T) {
	client := &stubLLM{available: true, result: llm.Success(json.RawMessage(`{"bullets": "oops"}`))}
	svc := NewService(client, LexicalMatcher{})

	text := "Experience\nworked on things without numbers\n"
	result := svc.Analyze(context.Background(), text, "")

	if len(result.BulletAnalysis) != 0 {
		t.Fatalf("expected empty critique, got %v", result.BulletAnalysis)
	}
	var wantMetrics, wantFormatting bool
	for _, insight := range result.Insights {
		if strings.Contains(insight, "quantifiable metrics") {
			wantMetrics = true
		}
		if strings.Contains(insight, "Formatting check") {
			wantFormatting = true
		}
	}
	if !wantMetrics || !wantFormatting {
		t.Fatalf("expected rule-based insights, got %v", result.Insights)
	}
}

func TestAnalyzeProviderFailureFallsBack(t *testing.T) {
	client := &stubLLM{available: true, result: llm.Failed(context.DeadlineExceeded)}
	svc := NewService(client, LexicalMatcher{})

	result := svc.Analyze(context.Background(), sampleResume, "")

	if len(result.BulletAnalysis) != 0 {
		t.Fatalf("expected empty critique on provider failure, got %v", result.BulletAnalysis)
	}
	if len(result.Insights) == 0 {
		t.Fatalf("expected fallback insights")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	svc := NewService(llm.Disabled{}, LexicalMatcher{})
	jd := "Python backend engineer with PostgreSQL"

	first := svc.Analyze(context.Background(), sampleResume, jd)
	second := svc.Analyze(context.Background(), sampleResume, jd)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical inputs:\n%+v\n%+v", first, second)
	}
}
