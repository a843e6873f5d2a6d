package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/godilite/collab-rating/internal/repository/models"
)

// MockWorkItemRepository is a function-based mock of service.WorkItemRepository.
type MockWorkItemRepository struct {
	ListCompletedByRequesterFunc func(ctx context.Context, requesterID string, start, end time.Time) ([]models.WorkItem, error)
}

func (m *MockWorkItemRepository) ListCompletedByRequester(ctx context.Context, requesterID string, start, end time.Time) ([]models.WorkItem, error) {
	if m.ListCompletedByRequesterFunc != nil {
		return m.ListCompletedByRequesterFunc(ctx, requesterID, start, end)
	}
	return nil, errors.New("ListCompletedByRequesterFunc not implemented")
}

// MockOrgDirectoryRepository is a function-based mock of
// service.OrgDirectoryRepository.
type MockOrgDirectoryRepository struct {
	GetUsersFunc       func(ctx context.Context, ids []string) (map[string]models.UserIdentity, error)
	FindDepartmentFunc func(ctx context.Context, value string) (*models.OrgUnit, error)
	FindPositionFunc   func(ctx context.Context, value string) (*models.OrgUnit, error)
}

func (m *MockOrgDirectoryRepository) GetUsers(ctx context.Context, ids []string) (map[string]models.UserIdentity, error) {
	if m.GetUsersFunc != nil {
		return m.GetUsersFunc(ctx, ids)
	}
	return nil, errors.New("GetUsersFunc not implemented")
}

func (m *MockOrgDirectoryRepository) FindDepartment(ctx context.Context, value string) (*models.OrgUnit, error) {
	if m.FindDepartmentFunc != nil {
		return m.FindDepartmentFunc(ctx, value)
	}
	return nil, errors.New("FindDepartmentFunc not implemented")
}

func (m *MockOrgDirectoryRepository) FindPosition(ctx context.Context, value string) (*models.OrgUnit, error) {
	if m.FindPositionFunc != nil {
		return m.FindPositionFunc(ctx, value)
	}
	return nil, errors.New("FindPositionFunc not implemented")
}

// MockRatingTemplateRepository is a function-based mock of
// service.RatingTemplateRepository.
type MockRatingTemplateRepository struct {
	FindApplicableFunc func(ctx context.Context, departments, positions []string) (*models.RatingTemplate, error)
	GetByIDFunc        func(ctx context.Context, id string) (*models.RatingTemplate, error)
}

func (m *MockRatingTemplateRepository) FindApplicable(ctx context.Context, departments, positions []string) (*models.RatingTemplate, error) {
	if m.FindApplicableFunc != nil {
		return m.FindApplicableFunc(ctx, departments, positions)
	}
	return nil, errors.New("FindApplicableFunc not implemented")
}

func (m *MockRatingTemplateRepository) GetByID(ctx context.Context, id string) (*models.RatingTemplate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented")
}

// MockRatingInstanceRepository is a function-based mock of
// service.RatingInstanceRepository.
type MockRatingInstanceRepository struct {
	UpsertWithResponsesFunc func(ctx context.Context, inst models.RatingInstance, responses []models.RatingResponse, at time.Time) (models.RatingInstance, error)
	FindFunc                func(ctx context.Context, requesterID, executorID, cycleMonth string) (*models.RatingInstance, error)
	ListByExecutorCycleFunc func(ctx context.Context, executorID, cycleMonth string) ([]models.RatingInstance, error)
}

func (m *MockRatingInstanceRepository) UpsertWithResponses(ctx context.Context, inst models.RatingInstance, responses []models.RatingResponse, at time.Time) (models.RatingInstance, error) {
	if m.UpsertWithResponsesFunc != nil {
		return m.UpsertWithResponsesFunc(ctx, inst, responses, at)
	}
	return models.RatingInstance{}, errors.New("UpsertWithResponsesFunc not implemented")
}

func (m *MockRatingInstanceRepository) Find(ctx context.Context, requesterID, executorID, cycleMonth string) (*models.RatingInstance, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, requesterID, executorID, cycleMonth)
	}
	return nil, errors.New("FindFunc not implemented")
}

func (m *MockRatingInstanceRepository) ListByExecutorCycle(ctx context.Context, executorID, cycleMonth string) ([]models.RatingInstance, error) {
	if m.ListByExecutorCycleFunc != nil {
		return m.ListByExecutorCycleFunc(ctx, executorID, cycleMonth)
	}
	return nil, errors.New("ListByExecutorCycleFunc not implemented")
}

// MockRatingResponseRepository is a function-based mock of
// service.RatingResponseRepository.
type MockRatingResponseRepository struct {
	ListByInstancesFunc func(ctx context.Context, instanceIDs []string) ([]models.RatingResponse, error)
}

func (m *MockRatingResponseRepository) ListByInstances(ctx context.Context, instanceIDs []string) ([]models.RatingResponse, error) {
	if m.ListByInstancesFunc != nil {
		return m.ListByInstancesFunc(ctx, instanceIDs)
	}
	return nil, errors.New("ListByInstancesFunc not implemented")
}
