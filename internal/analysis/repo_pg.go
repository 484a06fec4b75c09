package analysis

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis record.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO analyses (
	id, file_name, has_job_description, total_score, skills_match, content_impact, formatting_score, insights, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	insights, err := marshalJSONB(rec.Insights)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.FileName,
		rec.HasJobDescription,
		rec.TotalScore,
		rec.Breakdown.SkillsMatch,
		rec.Breakdown.ContentImpact,
		rec.Breakdown.FormattingScore,
		insights,
		rec.CreatedAt,
	)
	return err
}

// ListRecent returns up to limit records, newest first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	const query = `
SELECT id, file_name, has_job_description, total_score, skills_match, content_impact, formatting_score, insights, created_at
FROM analyses
ORDER BY created_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var insights sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.FileName,
			&rec.HasJobDescription,
			&rec.TotalScore,
			&rec.Breakdown.SkillsMatch,
			&rec.Breakdown.ContentImpact,
			&rec.Breakdown.FormattingScore,
			&insights,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if insights.Valid && insights.String != "" {
			if err := json.Unmarshal([]byte(insights.String), &rec.Insights); err != nil {
				rec.Insights = nil
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func marshalJSONB(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

var _ Repo = (*PGRepo)(nil)
