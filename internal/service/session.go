package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SessionAssembler builds the per-executor rating form state for a
// requester and cycle, including anything saved earlier.
type SessionAssembler struct {
	cycles        *CycleValidator
	collaborators *CollaborationResolver
	templates     *TemplateResolver
	instances     RatingInstanceRepository
	responses     RatingResponseRepository
	logger        *zap.Logger
}

func NewSessionAssembler(
	cycles *CycleValidator,
	collaborators *CollaborationResolver,
	templates *TemplateResolver,
	instances RatingInstanceRepository,
	responses RatingResponseRepository,
	logger *zap.Logger,
) *SessionAssembler {
	if cycles == nil || collaborators == nil || templates == nil || instances == nil || responses == nil {
		panic("session assembler dependencies must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionAssembler{
		cycles:        cycles,
		collaborators: collaborators,
		templates:     templates,
		instances:     instances,
		responses:     responses,
		logger:        logger.Named("session"),
	}
}

// Assemble returns one item per collaborator. A missing template leaves
// Template nil for that executor only; any other failure aborts.
func (a *SessionAssembler) Assemble(ctx context.Context, requesterID, cycleMonth string) ([]SessionItem, error) {
	cycle, err := a.cycles.Validate(cycleMonth)
	if err != nil {
		return nil, err
	}

	collaborators, err := a.collaborators.Resolve(ctx, requesterID, cycle.String())
	if err != nil {
		return nil, err
	}

	items := make([]SessionItem, len(collaborators))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLookups)
	for i, c := range collaborators {
		g.Go(func() error {
			item := SessionItem{
				ExecutorID:      c.ExecutorID,
				DisplayName:     c.DisplayName,
				DisplayTitle:    c.DisplayTitle,
				DisplayPosition: c.DisplayPosition,
			}

			tpl, err := a.templates.ResolveStrict(gctx, c.Department, c.Position)
			switch {
			case err == nil:
				item.Template = tpl
			case errors.Is(err, ErrTemplateNotFound):
				a.logger.Info("no template configured for executor",
					zap.String("executor", c.ExecutorID),
					zap.String("department", c.Department),
					zap.String("position", c.Position))
			default:
				return err
			}

			inst, err := a.instances.Find(gctx, requesterID, c.ExecutorID, cycle.String())
			if err != nil {
				return fmt.Errorf("%w: %v", ErrStorageFailure, err)
			}
			if inst != nil {
				item.Instance = inst
				responses, err := a.responses.ListByInstances(gctx, []string{inst.ID})
				if err != nil {
					return fmt.Errorf("%w: %v", ErrStorageFailure, err)
				}
				item.Responses = responses
			}

			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}
