package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/godilite/collab-rating/internal/repository/models"
	"github.com/godilite/collab-rating/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sessionFixture struct {
	workItems *mocks.MockWorkItemRepository
	directory *mocks.MockOrgDirectoryRepository
	templates *mocks.MockRatingTemplateRepository
	instances *mocks.MockRatingInstanceRepository
	responses *mocks.MockRatingResponseRepository
}

func (f *sessionFixture) assembler() *SessionAssembler {
	cycles := testCycles()
	logger := zap.NewNop()
	templates := NewTemplateResolver(f.templates, f.directory, logger)
	collaborators := NewCollaborationResolver(cycles, f.workItems, f.directory, logger)
	return NewSessionAssembler(cycles, collaborators, templates, f.instances, f.responses, logger)
}

func newSessionFixture() *sessionFixture {
	users := []models.UserIdentity{
		{ID: "E", DisplayName: "Eve", Title: "Senior Engineer", Department: "tech", Position: "dev"},
		{ID: "S", DisplayName: "Sam", Department: "sales", Position: "pm"},
	}
	return &sessionFixture{
		workItems: &mocks.MockWorkItemRepository{
			ListCompletedByRequesterFunc: func(ctx context.Context, requesterID string, start, end time.Time) ([]models.WorkItem, error) {
				return []models.WorkItem{{ID: "W1", RequesterID: requesterID, ExecutorID: "E"}}, nil
			},
		},
		directory: newDirectory(users, []models.OrgUnit{techDept, salesDept}, []models.OrgUnit{devPos, pmPos}),
		templates: &mocks.MockRatingTemplateRepository{
			FindApplicableFunc: func(ctx context.Context, departments, positions []string) (*models.RatingTemplate, error) {
				if slices.Contains(departments, "tech") && slices.Contains(positions, "dev") {
					// The store orders by version, so only v2 comes back.
					return &models.RatingTemplate{ID: "T-v2", Department: "tech", Position: "dev", Version: 2, IsActive: true}, nil
				}
				return nil, nil
			},
		},
		instances: &mocks.MockRatingInstanceRepository{
			FindFunc: func(ctx context.Context, requesterID, executorID, cycleMonth string) (*models.RatingInstance, error) {
				return nil, nil
			},
		},
		responses: &mocks.MockRatingResponseRepository{},
	}
}

func TestSessionAssembler_Assemble(t *testing.T) {
	ctx := context.Background()

	t.Run("single executor gets the latest template version", func(t *testing.T) {
		f := newSessionFixture()

		items, err := f.assembler().Assemble(ctx, "R", "2024-03")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "E", items[0].ExecutorID)
		assert.Equal(t, "Eve", items[0].DisplayName)
		assert.Equal(t, "Senior Engineer", items[0].DisplayTitle)
		assert.Equal(t, "Developer", items[0].DisplayPosition)
		require.NotNil(t, items[0].Template)
		assert.Equal(t, "T-v2", items[0].Template.ID)
		assert.Equal(t, 2, items[0].Template.Version)
		assert.Nil(t, items[0].Instance)
		assert.Nil(t, items[0].Responses)
	})

	t.Run("missing template is per executor", func(t *testing.T) {
		f := newSessionFixture()
		f.workItems.ListCompletedByRequesterFunc = func(ctx context.Context, requesterID string, start, end time.Time) ([]models.WorkItem, error) {
			return []models.WorkItem{{ID: "W1", ExecutorID: "S", Assignees: []models.WorkItemAssignee{{UserID: "E"}}}}, nil
		}

		items, err := f.assembler().Assemble(ctx, "R", "2024-03")

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "S", items[0].ExecutorID)
		assert.Nil(t, items[0].Template)
		assert.Equal(t, "E", items[1].ExecutorID)
		assert.NotNil(t, items[1].Template)
	})

	t.Run("saved work is loaded for resuming", func(t *testing.T) {
		f := newSessionFixture()
		saved := &models.RatingInstance{ID: "I1", RequesterID: "R", ExecutorID: "E", CycleMonth: "2024-02", TemplateID: "T-v2"}
		f.instances.FindFunc = func(ctx context.Context, requesterID, executorID, cycleMonth string) (*models.RatingInstance, error) {
			assert.Equal(t, "R", requesterID)
			assert.Equal(t, "E", executorID)
			assert.Equal(t, "2024-02", cycleMonth)
			return saved, nil
		}
		f.responses.ListByInstancesFunc = func(ctx context.Context, instanceIDs []string) ([]models.RatingResponse, error) {
			assert.Equal(t, []string{"I1"}, instanceIDs)
			return []models.RatingResponse{
				{InstanceID: "I1", FieldID: "F1", ValueScore: floatPtr(4)},
				{InstanceID: "I1", FieldID: "F2", ValueText: strPtr("great pairing partner")},
			}, nil
		}

		items, err := f.assembler().Assemble(ctx, "R", "2024-02")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, saved, items[0].Instance)
		assert.Len(t, items[0].Responses, 2)
	})

	t.Run("no collaborators gives an empty session", func(t *testing.T) {
		f := newSessionFixture()
		f.workItems.ListCompletedByRequesterFunc = func(ctx context.Context, requesterID string, start, end time.Time) ([]models.WorkItem, error) {
			return nil, nil
		}

		items, err := f.assembler().Assemble(ctx, "R", "2024-03")

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("invalid cycle", func(t *testing.T) {
		f := newSessionFixture()

		items, err := f.assembler().Assemble(ctx, "R", "2024-04")

		assert.ErrorIs(t, err, ErrInvalidCycle)
		assert.Nil(t, items)
	})

	t.Run("template store failure aborts the session", func(t *testing.T) {
		f := newSessionFixture()
		f.templates.FindApplicableFunc = func(ctx context.Context, departments, positions []string) (*models.RatingTemplate, error) {
			return nil, errors.New("database is locked")
		}

		_, err := f.assembler().Assemble(ctx, "R", "2024-03")

		assert.ErrorIs(t, err, ErrStorageFailure)
	})

	t.Run("instance store failure aborts the session", func(t *testing.T) {
		f := newSessionFixture()
		f.instances.FindFunc = func(ctx context.Context, requesterID, executorID, cycleMonth string) (*models.RatingInstance, error) {
			return nil, errors.New("database is locked")
		}

		_, err := f.assembler().Assemble(ctx, "R", "2024-03")

		assert.ErrorIs(t, err, ErrStorageFailure)
		assert.Contains(t, err.Error(), "database is locked")
	})
}
