package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/godilite/collab-rating/internal/repository/models"
)

// OrgDirectoryRepository reads users, departments and positions. The rating
// engine never writes to these tables.
type OrgDirectoryRepository struct {
	db *sql.DB
}

func NewOrgDirectoryRepository(db *sql.DB) *OrgDirectoryRepository {
	return &OrgDirectoryRepository{db: db}
}

// GetUsers returns the identities found for ids, keyed by user id. Unknown ids
// are simply absent from the result.
func (r *OrgDirectoryRepository) GetUsers(ctx context.Context, ids []string) (map[string]models.UserIdentity, error) {
	out := make(map[string]models.UserIdentity, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	placeholders, args := inClause(ids)
	query := `
		SELECT id, display_name, title, COALESCE(department, ''), COALESCE(position, '')
		FROM users
		WHERE id IN (` + placeholders + `)
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query GetUsers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u models.UserIdentity
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.Title, &u.Department, &u.Position); err != nil {
			return nil, fmt.Errorf("scan GetUsers row: %w", err)
		}
		out[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetUsers: %w", err)
	}
	return out, nil
}

// FindDepartment looks a department up by code or display name. It returns
// nil when neither matches.
func (r *OrgDirectoryRepository) FindDepartment(ctx context.Context, value string) (*models.OrgUnit, error) {
	return r.findUnit(ctx, "departments", value)
}

// FindPosition looks a position up by code or display name. It returns nil
// when neither matches.
func (r *OrgDirectoryRepository) FindPosition(ctx context.Context, value string) (*models.OrgUnit, error) {
	return r.findUnit(ctx, "positions", value)
}

func (r *OrgDirectoryRepository) findUnit(ctx context.Context, table, value string) (*models.OrgUnit, error) {
	// Exact code matches win over name matches.
	query := `
		SELECT code, name FROM ` + table + `
		WHERE code = ? OR name = ?
		ORDER BY CASE WHEN code = ? THEN 0 ELSE 1 END, code
		LIMIT 1
	`

	var unit models.OrgUnit
	err := r.db.QueryRowContext(ctx, query, value, value, value).Scan(&unit.Code, &unit.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query %s lookup: %w", table, err)
	}
	return &unit, nil
}
