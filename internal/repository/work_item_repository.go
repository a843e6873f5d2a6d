package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/godilite/collab-rating/internal/repository/models"
)

type WorkItemRepository struct {
	db *sql.DB
}

func NewWorkItemRepository(db *sql.DB) *WorkItemRepository {
	return &WorkItemRepository{db: db}
}

// ListCompletedByRequester returns the requester's work items completed in
// [start, end), each with its secondary assignees attached. completed_at is
// compared as an instant, so rows stored as SQLite's own UTC text or with a
// zone offset fall into the right window.
func (r *WorkItemRepository) ListCompletedByRequester(ctx context.Context, requesterID string, start, end time.Time) ([]models.WorkItem, error) {
	const query = `
		SELECT id, title, requester_id, COALESCE(executor_id, ''), status, completed_at
		FROM work_items
		WHERE requester_id = ?
		  AND status = 'completed'
		  AND julianday(completed_at) >= julianday(?)
		  AND julianday(completed_at) < julianday(?)
		ORDER BY julianday(completed_at), id
	`

	rows, err := r.db.QueryContext(ctx, query, requesterID, sqliteTime(start), sqliteTime(end))
	if err != nil {
		return nil, fmt.Errorf("query ListCompletedByRequester: %w", err)
	}

	var items []models.WorkItem
	for rows.Next() {
		var w models.WorkItem
		if err := rows.Scan(&w.ID, &w.Title, &w.RequesterID, &w.ExecutorID, &w.Status, &w.CompletedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan ListCompletedByRequester row: %w", err)
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate ListCompletedByRequester: %w", err)
	}
	rows.Close()

	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, len(items))
	for i, w := range items {
		ids[i] = w.ID
	}
	assignees, err := r.assigneesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Assignees = assignees[items[i].ID]
	}
	return items, nil
}

func (r *WorkItemRepository) assigneesFor(ctx context.Context, workItemIDs []string) (map[string][]models.WorkItemAssignee, error) {
	placeholders, args := inClause(workItemIDs)
	query := `
		SELECT work_item_id, user_id, COALESCE(position, '')
		FROM work_item_assignees
		WHERE work_item_id IN (` + placeholders + `)
		ORDER BY work_item_id, user_id
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query work item assignees: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]models.WorkItemAssignee)
	for rows.Next() {
		var workItemID string
		var a models.WorkItemAssignee
		if err := rows.Scan(&workItemID, &a.UserID, &a.Position); err != nil {
			return nil, fmt.Errorf("scan work item assignee row: %w", err)
		}
		out[workItemID] = append(out[workItemID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work item assignees: %w", err)
	}
	return out, nil
}

// sqliteTime renders t in the UTC text form SQLite date functions expect.
func sqliteTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05.000")
}
