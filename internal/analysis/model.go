package analysis

// ScoreBreakdown reports the three weighted components of the total score.
type ScoreBreakdown struct {
	SkillsMatch     float64 `json:"skills_match"`
	ContentImpact   float64 `json:"content_impact"`
	FormattingScore float64 `json:"formatting_score"`
}

// BulletCritique is a per-bullet score and improvement suggestion from the
// generative provider.
type BulletCritique struct {
	Text       string `json:"text"`
	Score      int    `json:"score"`
	Suggestion string `json:"suggestion"`
}

// Result aggregates everything produced by one analysis call. It is created
// fresh per request and never persisted as-is.
type Result struct {
	TotalScore     int                `json:"total_score"`
	SectionScores  map[string]float64 `json:"section_scores"`
	ScoreBreakdown ScoreBreakdown     `json:"score_breakdown"`
	BulletAnalysis []BulletCritique   `json:"bullet_analysis"`
	Insights       []string           `json:"insights"`
	Sections       map[string]string  `json:"sections"`
}
