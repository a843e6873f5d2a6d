package service

import (
	"context"
	"fmt"
	"time"

	"github.com/godilite/collab-rating/internal/repository/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SubmissionCoordinator persists a requester's ratings for a cycle. Saving the
// same entry again updates the stored rows in place.
type SubmissionCoordinator struct {
	cycles    *CycleValidator
	templates *TemplateResolver
	instances RatingInstanceRepository
	now       func() time.Time
	logger    *zap.Logger
}

func NewSubmissionCoordinator(
	cycles *CycleValidator,
	templates *TemplateResolver,
	instances RatingInstanceRepository,
	logger *zap.Logger,
) *SubmissionCoordinator {
	if cycles == nil || templates == nil || instances == nil {
		panic("submission coordinator dependencies must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionCoordinator{
		cycles:    cycles,
		templates: templates,
		instances: instances,
		now:       cycles.now,
		logger:    logger.Named("submission"),
	}
}

// Submit saves every entry. Entries are independent: each one's instance and
// responses commit together, and the first failure is returned.
func (s *SubmissionCoordinator) Submit(ctx context.Context, requesterID, cycleMonth string, entries []SubmissionEntry) error {
	cycle, err := s.cycles.Validate(cycleMonth)
	if err != nil {
		return err
	}
	if err := checkEntries(requesterID, entries); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLookups)
	for _, entry := range entries {
		g.Go(func() error {
			return s.saveEntry(gctx, requesterID, cycle, entry)
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("submission failed",
			zap.String("requester", requesterID),
			zap.String("cycle", cycle.String()),
			zap.Error(err))
		return err
	}

	s.logger.Info("ratings submitted",
		zap.String("requester", requesterID),
		zap.String("cycle", cycle.String()),
		zap.Int("entries", len(entries)))
	return nil
}

func (s *SubmissionCoordinator) saveEntry(ctx context.Context, requesterID string, cycle Cycle, entry SubmissionEntry) error {
	tpl, err := s.templates.Get(ctx, entry.TemplateID)
	if err != nil {
		return err
	}
	responses, err := bindResponses(tpl, entry)
	if err != nil {
		return err
	}

	at := s.now().UTC()
	_, err = s.instances.UpsertWithResponses(ctx, models.RatingInstance{
		RequesterID: requesterID,
		ExecutorID:  entry.ExecutorID,
		CycleMonth:  cycle.String(),
		TemplateID:  tpl.ID,
		SubmittedAt: at,
		UpdatedAt:   at,
	}, responses, at)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return nil
}

// checkEntries rejects structurally broken batches before anything is
// written.
func checkEntries(requesterID string, entries []SubmissionEntry) error {
	if requesterID == "" {
		return fmt.Errorf("%w: requester id is required", ErrInvalidSubmission)
	}
	executors := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.ExecutorID == "" {
			return fmt.Errorf("%w: executor id is required", ErrInvalidSubmission)
		}
		if entry.ExecutorID == requesterID {
			return fmt.Errorf("%w: requester %q cannot rate themselves", ErrInvalidSubmission, requesterID)
		}
		if entry.TemplateID == "" {
			return fmt.Errorf("%w: template id is required for executor %q", ErrInvalidSubmission, entry.ExecutorID)
		}
		if _, dup := executors[entry.ExecutorID]; dup {
			return fmt.Errorf("%w: executor %q appears more than once", ErrInvalidSubmission, entry.ExecutorID)
		}
		executors[entry.ExecutorID] = struct{}{}

		fields := make(map[string]struct{}, len(entry.Responses))
		for _, r := range entry.Responses {
			if _, dup := fields[r.FieldID]; dup {
				return fmt.Errorf("%w: field %q answered twice for executor %q", ErrInvalidSubmission, r.FieldID, entry.ExecutorID)
			}
			fields[r.FieldID] = struct{}{}
		}
	}
	return nil
}

// bindResponses checks every answer against its template field.
func bindResponses(tpl *models.RatingTemplate, entry SubmissionEntry) ([]models.RatingResponse, error) {
	fields := make(map[string]models.TemplateField, len(tpl.Fields))
	for _, f := range tpl.Fields {
		fields[f.ID] = f
	}

	out := make([]models.RatingResponse, 0, len(entry.Responses))
	for _, r := range entry.Responses {
		field, ok := fields[r.FieldID]
		if !ok {
			return nil, fmt.Errorf("%w: field %q is not part of template %q", ErrInvalidSubmission, r.FieldID, tpl.ID)
		}
		if (r.ValueScore == nil) == (r.ValueText == nil) {
			return nil, fmt.Errorf("%w: field %q needs exactly one of score or text", ErrInvalidSubmission, r.FieldID)
		}

		switch field.Kind {
		case models.FieldKindScore:
			if r.ValueScore == nil {
				return nil, fmt.Errorf("%w: field %q expects a score", ErrInvalidSubmission, r.FieldID)
			}
			score := *r.ValueScore
			if score < 0 || (field.MaxScore != nil && score > *field.MaxScore) {
				return nil, fmt.Errorf("%w: score %v out of range for field %q", ErrInvalidSubmission, score, r.FieldID)
			}
		case models.FieldKindText:
			if r.ValueText == nil {
				return nil, fmt.Errorf("%w: field %q expects text", ErrInvalidSubmission, r.FieldID)
			}
		}

		out = append(out, models.RatingResponse{
			FieldID:    r.FieldID,
			ValueScore: r.ValueScore,
			ValueText:  r.ValueText,
		})
	}
	return out, nil
}
