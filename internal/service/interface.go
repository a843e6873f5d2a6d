package service

import (
	"context"
	"time"

	"github.com/godilite/collab-rating/internal/repository/models"
)

// WorkItemRepository reads completed collaboration records.
type WorkItemRepository interface {
	ListCompletedByRequester(ctx context.Context, requesterID string, start, end time.Time) ([]models.WorkItem, error)
}

// OrgDirectoryRepository reads user identities and the department/position
// code-name directory. Find* return nil when nothing matches.
type OrgDirectoryRepository interface {
	GetUsers(ctx context.Context, ids []string) (map[string]models.UserIdentity, error)
	FindDepartment(ctx context.Context, value string) (*models.OrgUnit, error)
	FindPosition(ctx context.Context, value string) (*models.OrgUnit, error)
}

// RatingTemplateRepository returns nil templates when nothing matches.
type RatingTemplateRepository interface {
	FindApplicable(ctx context.Context, departments, positions []string) (*models.RatingTemplate, error)
	GetByID(ctx context.Context, id string) (*models.RatingTemplate, error)
}

type RatingInstanceRepository interface {
	// UpsertWithResponses stores the instance and its responses atomically.
	UpsertWithResponses(ctx context.Context, inst models.RatingInstance, responses []models.RatingResponse, at time.Time) (models.RatingInstance, error)
	Find(ctx context.Context, requesterID, executorID, cycleMonth string) (*models.RatingInstance, error)
	ListByExecutorCycle(ctx context.Context, executorID, cycleMonth string) ([]models.RatingInstance, error)
}

type RatingResponseRepository interface {
	ListByInstances(ctx context.Context, instanceIDs []string) ([]models.RatingResponse, error)
}
