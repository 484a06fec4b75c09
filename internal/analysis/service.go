package analysis

import (
	"context"
	"fmt"

	"resume-insight/internal/llm"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/telemetry"
)

// Service orchestrates one resume analysis: section parsing, heuristic and
// semantic scoring, bullet critique, and insight derivation. Both
// collaborators are process-wide, read-only dependencies.
type Service struct {
	LLM     llm.Client
	Matcher SectionMatcher
}

// NewService constructs a Service.
func NewService(llmClient llm.Client, matcher SectionMatcher) *Service {
	return &Service{LLM: llmClient, Matcher: matcher}
}

// Analyze produces a full analysis for the given resume text. A provider
// failure at any step degrades to the deterministic fallback for that step;
// it never fails the request.
func (s *Service) Analyze(ctx context.Context, resumeText, jobDescription string) Result {
	sections := ParseSections(resumeText)
	experienceText := sections[SectionExperience]

	digits := metricCount(experienceText)
	metric := metricScore(digits)

	skillsMatch := neutralSkillsMatch
	sectionScores := map[string]float64{}
	if jobDescription != "" {
		scores, err := s.Matcher.SectionScores(ctx, sections, jobDescription)
		if err != nil {
			// Degrade to the no-JD neutral score rather than failing.
			telemetry.Warn("analysis.match_failed", map[string]any{"error": err.Error()})
			metrics.IncEmbeddingFallback()
		} else {
			sectionScores = scores
			skillsMatch = weightedJDMatch(scores)
		}
	}

	formatting := formattingScore(resumeText, sections)

	breakdown := ScoreBreakdown{
		SkillsMatch:     round2(skillsMatch),
		ContentImpact:   float64(metric * 5),
		FormattingScore: formatting,
	}

	bullets, insights := s.critiqueBullets(ctx, experienceText)
	if len(insights) == 0 {
		insights = fallbackInsights(digits, formatting)
	}

	return Result{
		TotalScore:     totalScore(breakdown),
		SectionScores:  sectionScores,
		ScoreBreakdown: breakdown,
		BulletAnalysis: bullets,
		Insights:       insights,
		Sections:       sections,
	}
}

type bulletResponse struct {
	Bullets []BulletCritique `json:"bullets"`
}

// critiqueBullets asks the generative provider to score experience bullets
// and derives insight strings from the critique. Unavailability or malformed
// output yields an empty critique and no insights.
func (s *Service) critiqueBullets(ctx context.Context, experienceText string) ([]BulletCritique, []string) {
	bullets := []BulletCritique{}
	insights := []string{}

	if !s.LLM.Available() {
		return bullets, insights
	}

	excerpt := experienceText
	if len(excerpt) > bulletExcerptLimit {
		excerpt = excerpt[:bulletExcerptLimit]
	}

	res := s.LLM.GenerateJSON(ctx, fmt.Sprintf(bulletPromptTemplate, excerpt), bulletSystemPrompt)
	var parsed bulletResponse
	if !res.Decode(&parsed) || parsed.Bullets == nil {
		metrics.IncLLMFallback()
		return bullets, insights
	}
	bullets = parsed.Bullets

	weak := 0
	for _, b := range bullets {
		if b.Score < 60 {
			weak++
		}
	}
	if weak > 0 {
		insights = append(insights, fmt.Sprintf("Found %d weak bullet points. See detailed analysis for fixes.", weak))
	}

	if len(insights) == 0 {
		for i, b := range bullets {
			if i >= 2 {
				break
			}
			if b.Suggestion != "" {
				insights = append(insights, "Improvement Idea: "+b.Suggestion)
			}
		}
	}

	return bullets, insights
}

// fallbackInsights flags thin metrics and weak formatting when no critique
// insights were produced.
func fallbackInsights(digits int, formatting float64) []string {
	insights := []string{}
	if digits < 3 {
		insights = append(insights, "Your 'Experience' section lacks quantifiable metrics. Recruiters love data!")
	}
	if formatting < 70 {
		insights = append(insights, "Formatting check: Ensure clear section headers and consistent spacing.")
	}
	return insights
}
