package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/godilite/collab-rating/internal/repository/models"
)

type RatingTemplateRepository struct {
	db *sql.DB
}

func NewRatingTemplateRepository(db *sql.DB) *RatingTemplateRepository {
	return &RatingTemplateRepository{db: db}
}

// FindApplicable returns the highest-version active template whose department
// and position are in the given candidate sets, or nil when none matches.
func (r *RatingTemplateRepository) FindApplicable(ctx context.Context, departments, positions []string) (*models.RatingTemplate, error) {
	if len(departments) == 0 || len(positions) == 0 {
		return nil, nil
	}

	deptPlaceholders, deptArgs := inClause(departments)
	posPlaceholders, posArgs := inClause(positions)
	query := `
		SELECT id, name, department, position, version, is_active
		FROM rating_templates
		WHERE is_active = 1
		  AND department IN (` + deptPlaceholders + `)
		  AND position IN (` + posPlaceholders + `)
		ORDER BY version DESC, created_at DESC
		LIMIT 1
	`

	args := append(deptArgs, posArgs...)
	tpl, err := r.scanTemplate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("query FindApplicable: %w", err)
	}
	if tpl == nil {
		return nil, nil
	}
	if err := r.loadFields(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// GetByID returns the template with its fields, or nil if it does not exist.
// Inactive templates are returned as well so that earlier submissions remain
// editable after a newer version is published.
func (r *RatingTemplateRepository) GetByID(ctx context.Context, id string) (*models.RatingTemplate, error) {
	const query = `
		SELECT id, name, department, position, version, is_active
		FROM rating_templates
		WHERE id = ?
	`

	tpl, err := r.scanTemplate(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("query GetByID: %w", err)
	}
	if tpl == nil {
		return nil, nil
	}
	if err := r.loadFields(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (r *RatingTemplateRepository) scanTemplate(row *sql.Row) (*models.RatingTemplate, error) {
	var tpl models.RatingTemplate
	err := row.Scan(&tpl.ID, &tpl.Name, &tpl.Department, &tpl.Position, &tpl.Version, &tpl.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *RatingTemplateRepository) loadFields(ctx context.Context, tpl *models.RatingTemplate) error {
	const query = `
		SELECT id, label, kind, max_score, required, sort_order
		FROM template_fields
		WHERE template_id = ?
		ORDER BY sort_order, id
	`

	rows, err := r.db.QueryContext(ctx, query, tpl.ID)
	if err != nil {
		return fmt.Errorf("query template fields: %w", err)
	}
	defer rows.Close()

	tpl.Fields = make([]models.TemplateField, 0)
	for rows.Next() {
		var f models.TemplateField
		var kind string
		var maxScore sql.NullFloat64
		if err := rows.Scan(&f.ID, &f.Label, &kind, &maxScore, &f.Required, &f.SortOrder); err != nil {
			return fmt.Errorf("scan template field row: %w", err)
		}
		f.Kind = models.FieldKind(kind)
		if maxScore.Valid {
			v := maxScore.Float64
			f.MaxScore = &v
		}
		tpl.Fields = append(tpl.Fields, f)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate template fields: %w", err)
	}
	return nil
}
