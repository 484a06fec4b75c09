package analysis

import (
	"context"
	"regexp"
	"strings"

	"resume-insight/internal/embedding"
)

// SectionMatcher scores each resume section against a job description on a
// [0,100] scale. Two variants exist: EmbeddingMatcher when an embedding
// provider is configured, LexicalMatcher as the deterministic fallback.
type SectionMatcher interface {
	SectionScores(ctx context.Context, sections map[string]string, jobDescription string) (map[string]float64, error)
}

// EmbeddingMatcher scores sections by cosine similarity between section and
// job-description embeddings.
type EmbeddingMatcher struct {
	Provider embedding.Provider
}

// SectionScores embeds the job description once, then each non-empty section.
// Empty sections score 0 without a provider call.
func (m *EmbeddingMatcher) SectionScores(ctx context.Context, sections map[string]string, jobDescription string) (map[string]float64, error) {
	jdVector, err := m.Provider.Embed(ctx, jobDescription)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(sections))
	for key, text := range sections {
		if strings.TrimSpace(text) == "" {
			scores[key] = 0
			continue
		}
		vector, err := m.Provider.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		scores[key] = round2(embedding.Cosine(vector, jdVector) * 100)
	}
	return scores, nil
}

var wordSplit = regexp.MustCompile(`\W+`)

// LexicalMatcher scores sections by word overlap with the job description.
// It is the deterministic stand-in used when no embedding provider is
// configured; scores are integral percentages capped at 100.
type LexicalMatcher struct{}

// SectionScores never fails.
func (LexicalMatcher) SectionScores(ctx context.Context, sections map[string]string, jobDescription string) (map[string]float64, error) {
	_ = ctx
	jdWords := make(map[string]struct{})
	for _, w := range wordSplit.Split(strings.ToLower(jobDescription), -1) {
		if len(w) > 2 {
			jdWords[w] = struct{}{}
		}
	}

	scores := make(map[string]float64, len(sections))
	for key, text := range sections {
		if strings.TrimSpace(text) == "" {
			scores[key] = 0
			continue
		}

		var sectionWords []string
		for _, w := range wordSplit.Split(strings.ToLower(text), -1) {
			if len(w) > 2 {
				sectionWords = append(sectionWords, w)
			}
		}
		matching := 0
		for _, w := range sectionWords {
			if _, ok := jdWords[w]; ok {
				matching++
			}
		}

		overlap := 0.0
		if len(sectionWords) > 0 {
			denom := len(sectionWords)
			if len(jdWords) < denom {
				denom = len(jdWords)
			}
			if denom > 0 {
				overlap = float64(matching) / float64(denom) * 100
			}
		}
		if overlap > 100 {
			overlap = 100
		}
		scores[key] = round2(overlap)
	}
	return scores, nil
}
