package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/godilite/collab-rating/internal/repository/models"
)

type RatingResponseRepository struct {
	db *sql.DB
}

func NewRatingResponseRepository(db *sql.DB) *RatingResponseRepository {
	return &RatingResponseRepository{db: db}
}

// upsertResponses writes one row per field of the instance inside tx,
// overwriting any earlier answer for the same field.
func upsertResponses(ctx context.Context, tx *sql.Tx, instanceID string, responses []models.RatingResponse, at time.Time) error {
	const upsert = `
		INSERT INTO rating_responses (instance_id, field_id, value_score, value_text, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (instance_id, field_id) DO UPDATE SET
			value_score = excluded.value_score,
			value_text = excluded.value_text,
			updated_at = excluded.updated_at
	`

	if len(responses) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, upsert)
	if err != nil {
		return fmt.Errorf("prepare upsertResponses: %w", err)
	}
	defer stmt.Close()

	for _, resp := range responses {
		var score sql.NullFloat64
		if resp.ValueScore != nil {
			score = sql.NullFloat64{Float64: *resp.ValueScore, Valid: true}
		}
		var text sql.NullString
		if resp.ValueText != nil {
			text = sql.NullString{String: *resp.ValueText, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, instanceID, resp.FieldID, score, text, at.UTC()); err != nil {
			return fmt.Errorf("exec upsertResponses field %s: %w", resp.FieldID, err)
		}
	}
	return nil
}

// ListByInstances returns the responses of all given instances.
func (r *RatingResponseRepository) ListByInstances(ctx context.Context, instanceIDs []string) ([]models.RatingResponse, error) {
	if len(instanceIDs) == 0 {
		return nil, nil
	}

	placeholders, args := inClause(instanceIDs)
	query := `
		SELECT instance_id, field_id, value_score, value_text
		FROM rating_responses
		WHERE instance_id IN (` + placeholders + `)
		ORDER BY instance_id, field_id
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ListByInstances: %w", err)
	}
	defer rows.Close()

	var out []models.RatingResponse
	for rows.Next() {
		var resp models.RatingResponse
		var score sql.NullFloat64
		var text sql.NullString
		if err := rows.Scan(&resp.InstanceID, &resp.FieldID, &score, &text); err != nil {
			return nil, fmt.Errorf("scan ListByInstances row: %w", err)
		}
		if score.Valid {
			v := score.Float64
			resp.ValueScore = &v
		}
		if text.Valid {
			v := text.String
			resp.ValueText = &v
		}
		out = append(out, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListByInstances: %w", err)
	}
	return out, nil
}
