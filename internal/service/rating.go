package service

import (
	"context"
	"time"

	"github.com/godilite/collab-rating/internal/repository/models"
	"go.uber.org/zap"
)

const (
	opTimeout = 5 * time.Second
)

// Repositories groups the store dependencies of the rating engine.
type Repositories struct {
	WorkItems WorkItemRepository
	Directory OrgDirectoryRepository
	Templates RatingTemplateRepository
	Instances RatingInstanceRepository
	Responses RatingResponseRepository
}

// RatingService is the entry point used by transports. Every method
// validates the cycle before touching the store.
type RatingService struct {
	cycles     *CycleValidator
	templates  *TemplateResolver
	sessions   *SessionAssembler
	submission *SubmissionCoordinator
	statistics *StatisticsAggregator
	logger     *zap.Logger
}

// NewRatingService wires the engine components over repos.
func NewRatingService(repos Repositories, logger *zap.Logger, opts ...CycleOption) *RatingService {
	if repos.WorkItems == nil || repos.Directory == nil || repos.Templates == nil ||
		repos.Instances == nil || repos.Responses == nil {
		panic("all repositories must be provided")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}

	cycles := NewCycleValidator(opts...)
	templates := NewTemplateResolver(repos.Templates, repos.Directory, logger)
	collaborators := NewCollaborationResolver(cycles, repos.WorkItems, repos.Directory, logger)

	return &RatingService{
		cycles:     cycles,
		templates:  templates,
		sessions:   NewSessionAssembler(cycles, collaborators, templates, repos.Instances, repos.Responses, logger),
		submission: NewSubmissionCoordinator(cycles, templates, repos.Instances, logger),
		statistics: NewStatisticsAggregator(cycles, repos.Instances, repos.Responses, logger),
		logger:     logger,
	}
}

// GetSession returns the rating session of requesterID for cycleMonth.
func (s *RatingService) GetSession(ctx context.Context, requesterID, cycleMonth string) ([]SessionItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	items, err := s.sessions.Assemble(ctx, requesterID, cycleMonth)
	if err != nil {
		return nil, err
	}

	s.logger.Info("assembled rating session",
		zap.String("requester", requesterID),
		zap.String("cycle", cycleMonth),
		zap.Int("executors", len(items)))
	return items, nil
}

func (s *RatingService) Submit(ctx context.Context, requesterID, cycleMonth string, entries []SubmissionEntry) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.submission.Submit(ctx, requesterID, cycleMonth, entries)
}

func (s *RatingService) ExecutorMonthlyStats(ctx context.Context, executorID, cycleMonth string) (MonthlyStats, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.statistics.ExecutorMonthlyStats(ctx, executorID, cycleMonth)
}

// ResolveTemplate is the strict lookup; a missing template is an error.
func (s *RatingService) ResolveTemplate(ctx context.Context, department, position string) (*models.RatingTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.templates.ResolveStrict(ctx, department, position)
}

// AllowedCycles lists the cycle months open for rating, current first.
func (s *RatingService) AllowedCycles() []string {
	cycles := s.cycles.Allowed()
	out := make([]string, len(cycles))
	for i, c := range cycles {
		out[i] = c.String()
	}
	return out
}

// ValidateCycle reports whether cycleMonth is currently open for rating.
func (s *RatingService) ValidateCycle(cycleMonth string) error {
	_, err := s.cycles.Validate(cycleMonth)
	return err
}
