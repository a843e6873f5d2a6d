package mocks

import (
	"context"
	"errors"

	"github.com/godilite/collab-rating/internal/repository/models"
	"github.com/godilite/collab-rating/internal/service"
)

// MockRatingService is a mock implementation of the RatingService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockRatingService struct {
	GetSessionFunc           func(ctx context.Context, requesterID, cycleMonth string) ([]service.SessionItem, error)
	SubmitFunc               func(ctx context.Context, requesterID, cycleMonth string, entries []service.SubmissionEntry) error
	ExecutorMonthlyStatsFunc func(ctx context.Context, executorID, cycleMonth string) (service.MonthlyStats, error)
	ResolveTemplateFunc      func(ctx context.Context, department, position string) (*models.RatingTemplate, error)
	AllowedCyclesFunc        func() []string
	ValidateCycleFunc        func(cycleMonth string) error
}

// GetSession implements the RatingService interface
func (m *MockRatingService) GetSession(ctx context.Context, requesterID, cycleMonth string) ([]service.SessionItem, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, requesterID, cycleMonth)
	}
	return nil, errors.New("GetSessionFunc not implemented")
}

// Submit implements the RatingService interface
func (m *MockRatingService) Submit(ctx context.Context, requesterID, cycleMonth string, entries []service.SubmissionEntry) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, requesterID, cycleMonth, entries)
	}
	return errors.New("SubmitFunc not implemented")
}

// ExecutorMonthlyStats implements the RatingService interface
func (m *MockRatingService) ExecutorMonthlyStats(ctx context.Context, executorID, cycleMonth string) (service.MonthlyStats, error) {
	if m.ExecutorMonthlyStatsFunc != nil {
		return m.ExecutorMonthlyStatsFunc(ctx, executorID, cycleMonth)
	}
	return service.MonthlyStats{}, errors.New("ExecutorMonthlyStatsFunc not implemented")
}

// ResolveTemplate implements the RatingService interface
func (m *MockRatingService) ResolveTemplate(ctx context.Context, department, position string) (*models.RatingTemplate, error) {
	if m.ResolveTemplateFunc != nil {
		return m.ResolveTemplateFunc(ctx, department, position)
	}
	return nil, errors.New("ResolveTemplateFunc not implemented")
}

// AllowedCycles implements the RatingService interface
func (m *MockRatingService) AllowedCycles() []string {
	if m.AllowedCyclesFunc != nil {
		return m.AllowedCyclesFunc()
	}
	return nil
}

// ValidateCycle implements the RatingService interface. Without
// ValidateCycleFunc every cycle is accepted.
func (m *MockRatingService) ValidateCycle(cycleMonth string) error {
	if m.ValidateCycleFunc != nil {
		return m.ValidateCycleFunc(cycleMonth)
	}
	return nil
}
