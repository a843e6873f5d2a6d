package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxParallelLookups = 8

// CollaborationResolver finds the executors a requester worked with during a
// cycle.
type CollaborationResolver struct {
	cycles    *CycleValidator
	workItems WorkItemRepository
	directory OrgDirectoryRepository
	org       *OrgResolver
	logger    *zap.Logger
}

func NewCollaborationResolver(cycles *CycleValidator, workItems WorkItemRepository, directory OrgDirectoryRepository, logger *zap.Logger) *CollaborationResolver {
	if cycles == nil || workItems == nil || directory == nil {
		panic("collaboration resolver dependencies must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollaborationResolver{
		cycles:    cycles,
		workItems: workItems,
		directory: directory,
		org:       NewOrgResolver(directory),
		logger:    logger.Named("collaboration"),
	}
}

// Resolve returns each executor of the requester's completed work items in
// the cycle exactly once, in first-seen order. The requester is never listed
// as their own collaborator.
func (r *CollaborationResolver) Resolve(ctx context.Context, requesterID, cycleMonth string) ([]Collaborator, error) {
	cycle, err := r.cycles.Validate(cycleMonth)
	if err != nil {
		return nil, err
	}
	start, end := cycle.Window()

	items, err := r.workItems.ListCompletedByRequester(ctx, requesterID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	var ids []string
	seen := make(map[string]struct{})
	fallbackPosition := make(map[string]string)
	add := func(id, position string) {
		if id == "" || id == requesterID {
			return
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		if fallbackPosition[id] == "" && position != "" {
			fallbackPosition[id] = position
		}
	}
	for _, item := range items {
		add(item.ExecutorID, "")
		for _, a := range item.Assignees {
			add(a.UserID, a.Position)
		}
	}

	if len(ids) == 0 {
		r.logger.Debug("no collaborators",
			zap.String("requester", requesterID),
			zap.String("cycle", cycle.String()))
		return []Collaborator{}, nil
	}

	users, err := r.directory.GetUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	out := make([]Collaborator, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLookups)
	for i, id := range ids {
		g.Go(func() error {
			user, known := users[id]
			if !known {
				// Only the work-item association says anything about this
				// executor; the department falls back to the general sentinel.
				r.logger.Warn("executor missing from directory, using general department",
					zap.String("executor", id),
					zap.String("association_position", fallbackPosition[id]))
				pos, err := r.org.Position(gctx, fallbackPosition[id])
				if err != nil {
					return err
				}
				out[i] = Collaborator{
					ExecutorID:      id,
					Department:      GeneralOrgValue,
					Position:        pos.Code,
					DisplayPosition: displayName(fallbackPosition[id], pos),
				}
				return nil
			}

			dept, err := r.org.Department(gctx, user.Department)
			if err != nil {
				return err
			}
			position := user.Position
			if position == "" {
				position = fallbackPosition[id]
			}
			pos, err := r.org.Position(gctx, position)
			if err != nil {
				return err
			}

			out[i] = Collaborator{
				ExecutorID:      id,
				Department:      dept.Code,
				Position:        pos.Code,
				DisplayName:     user.DisplayName,
				DisplayTitle:    user.Title,
				DisplayPosition: displayName(position, pos),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Debug("resolved collaborators",
		zap.String("requester", requesterID),
		zap.String("cycle", cycle.String()),
		zap.Int("work_items", len(items)),
		zap.Int("executors", len(out)))
	return out, nil
}

// displayName is the resolved name of raw, or empty when raw was empty and
// only the sentinel applies.
func displayName(raw string, v OrgValue) string {
	if raw == "" {
		return ""
	}
	return v.Name
}
