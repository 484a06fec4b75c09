package analysis

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound marks a missing analysis record.
var ErrNotFound = errors.New("analysis not found")

// Record is the persisted trace of one completed analysis. It is write-only
// telemetry: nothing read from the repo feeds back into scoring.
type Record struct {
	ID                string         `json:"id"`
	FileName          string         `json:"fileName"`
	HasJobDescription bool           `json:"hasJobDescription"`
	TotalScore        int            `json:"totalScore"`
	Breakdown         ScoreBreakdown `json:"scoreBreakdown"`
	Insights          []string       `json:"insights"`
	CreatedAt         time.Time      `json:"createdAt"`
}

// Repo persists analysis records.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
