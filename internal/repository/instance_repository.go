package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/godilite/collab-rating/internal/repository/models"
)

type RatingInstanceRepository struct {
	db *sql.DB
}

func NewRatingInstanceRepository(db *sql.DB) *RatingInstanceRepository {
	return &RatingInstanceRepository{db: db}
}

const instanceColumns = `id, requester_id, executor_id, cycle_month, template_id, submitted_at, updated_at`

// UpsertWithResponses inserts the instance or, when one already exists for
// the same requester, executor and cycle, refreshes its template and
// timestamps, then writes its responses. Instance and responses commit
// together, so a failing response leaves no new instance behind. The stored
// instance is returned; its id is stable across calls.
func (r *RatingInstanceRepository) UpsertWithResponses(ctx context.Context, inst models.RatingInstance, responses []models.RatingResponse, at time.Time) (models.RatingInstance, error) {
	const upsert = `
		INSERT INTO rating_instances (` + instanceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (requester_id, executor_id, cycle_month) DO UPDATE SET
			template_id = excluded.template_id,
			submitted_at = excluded.submitted_at,
			updated_at = excluded.updated_at
	`
	const selectByKey = `
		SELECT ` + instanceColumns + `
		FROM rating_instances
		WHERE requester_id = ? AND executor_id = ? AND cycle_month = ?
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.RatingInstance{}, fmt.Errorf("begin UpsertWithResponses: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, upsert,
		uuid.NewString(), inst.RequesterID, inst.ExecutorID, inst.CycleMonth,
		inst.TemplateID, inst.SubmittedAt.UTC(), inst.UpdatedAt.UTC())
	if err != nil {
		return models.RatingInstance{}, fmt.Errorf("exec UpsertWithResponses: %w", err)
	}

	stored, err := scanInstance(tx.QueryRowContext(ctx, selectByKey, inst.RequesterID, inst.ExecutorID, inst.CycleMonth))
	if err != nil {
		return models.RatingInstance{}, fmt.Errorf("reload UpsertWithResponses: %w", err)
	}

	if err := upsertResponses(ctx, tx, stored.ID, responses, at); err != nil {
		return models.RatingInstance{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.RatingInstance{}, fmt.Errorf("commit UpsertWithResponses: %w", err)
	}
	return stored, nil
}

// Find returns the instance for the natural key, or nil if none was stored.
func (r *RatingInstanceRepository) Find(ctx context.Context, requesterID, executorID, cycleMonth string) (*models.RatingInstance, error) {
	const query = `
		SELECT ` + instanceColumns + `
		FROM rating_instances
		WHERE requester_id = ? AND executor_id = ? AND cycle_month = ?
	`

	inst, err := scanInstance(r.db.QueryRowContext(ctx, query, requesterID, executorID, cycleMonth))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query Find: %w", err)
	}
	return &inst, nil
}

// ListByExecutorCycle returns every instance rating the executor in the cycle.
func (r *RatingInstanceRepository) ListByExecutorCycle(ctx context.Context, executorID, cycleMonth string) ([]models.RatingInstance, error) {
	const query = `
		SELECT ` + instanceColumns + `
		FROM rating_instances
		WHERE executor_id = ? AND cycle_month = ?
		ORDER BY submitted_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, executorID, cycleMonth)
	if err != nil {
		return nil, fmt.Errorf("query ListByExecutorCycle: %w", err)
	}
	defer rows.Close()

	var out []models.RatingInstance
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ListByExecutorCycle row: %w", err)
		}
		out = append(out, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListByExecutorCycle: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstance(row rowScanner) (models.RatingInstance, error) {
	var inst models.RatingInstance
	err := row.Scan(&inst.ID, &inst.RequesterID, &inst.ExecutorID, &inst.CycleMonth,
		&inst.TemplateID, &inst.SubmittedAt, &inst.UpdatedAt)
	return inst, err
}
