package analysis

import (
	"math"
	"strings"
	"unicode"
)

// Weights applied when combining component scores into the total.
const (
	weightSkillsMatch    = 0.5
	weightContentImpact  = 0.3
	weightFormatting     = 0.2
	neutralSkillsMatch   = 50.0
	metricScoreCap       = 20
	shortResumeThreshold = 500
)

// Section weights for the job-description match.
var jdMatchWeights = map[string]float64{
	SectionExperience: 0.4,
	SectionSkills:     0.4,
	SectionProjects:   0.1,
	SectionEducation:  0.1,
}

// metricCount counts digit characters in the experience section. Numbers in
// experience bullets are the cheap proxy for quantified impact.
func metricCount(experienceText string) int {
	count := 0
	for _, r := range experienceText {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// metricScore converts a digit count into a 0-20 metric score.
func metricScore(count int) int {
	score := count * 2
	if score > metricScoreCap {
		score = metricScoreCap
	}
	return score
}

// formattingScore applies rule-based penalties from a 100 baseline:
// missing critical sections, very short content, and no bullet markers.
func formattingScore(text string, sections map[string]string) float64 {
	score := 100
	if strings.TrimSpace(sections[SectionExperience]) == "" {
		score -= 20
	}
	if strings.TrimSpace(sections[SectionEducation]) == "" {
		score -= 15
	}
	if strings.TrimSpace(sections[SectionSkills]) == "" {
		score -= 15
	}
	if len(text) < shortResumeThreshold {
		score -= 30
	}
	if !strings.Contains(text, "-") && !strings.Contains(text, "•") && !strings.Contains(text, "*") {
		score -= 20
	}
	if score < 0 {
		score = 0
	}
	return float64(score)
}

// weightedJDMatch combines per-section similarity scores into a single
// job-description match score. Missing sections contribute 0.
func weightedJDMatch(sectionScores map[string]float64) float64 {
	total := 0.0
	for key, weight := range jdMatchWeights {
		total += sectionScores[key] * weight
	}
	return total
}

// totalScore combines the three components per the published formula.
func totalScore(b ScoreBreakdown) int {
	return int(math.Round(b.SkillsMatch*weightSkillsMatch + b.ContentImpact*weightContentImpact + b.FormattingScore*weightFormatting))
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
