package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	pb "github.com/godilite/collab-rating/api/v1"
	"github.com/godilite/collab-rating/internal/grpc/mocks"
	"github.com/godilite/collab-rating/internal/repository/models"
	"github.com/godilite/collab-rating/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type countingRecorder struct {
	mu        sync.Mutex
	submitted int
	misses    int
	hits      int
	lookups   int
}

func (r *countingRecorder) AddRatingsSubmitted(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitted += n
}

func (r *countingRecorder) IncTemplateMiss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses++
}

func (r *countingRecorder) RecordCacheLookup(hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	if hit {
		r.hits++
	}
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// TestNewGRPCHandlers tests the constructor
func TestNewGRPCHandlers(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{}
		mockCache := &mocks.MockCacher{}

		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), 5*time.Minute)

		assert.Equal(t, mockRating, handlers.rating)
		assert.Equal(t, mockCache, handlers.cache)
		assert.Equal(t, 5*time.Minute, handlers.cacheTTL)
		assert.NotNil(t, handlers.logger)
		assert.Equal(t, nopRecorder{}, handlers.recorder)
	})

	t.Run("nil rating service panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(nil, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		})
	})

	t.Run("non-positive TTL uses default", func(t *testing.T) {
		for _, ttl := range []time.Duration{0, -time.Minute} {
			handlers := NewGRPCHandlers(&mocks.MockRatingService{}, nil, nil, ttl)
			assert.Equal(t, defaultCacheDuration, handlers.cacheTTL)
		}
	})

	t.Run("recorder option", func(t *testing.T) {
		rec := &countingRecorder{}
		handlers := NewGRPCHandlers(&mocks.MockRatingService{}, nil, nil, time.Minute, WithRecorder(rec))
		assert.Same(t, rec, handlers.recorder)
	})
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"invalid cycle", fmt.Errorf("%w: cycle month must be YYYY-MM", service.ErrInvalidCycle), codes.InvalidArgument},
		{"invalid submission", fmt.Errorf("%w: unknown field", service.ErrInvalidSubmission), codes.InvalidArgument},
		{"template not found", service.ErrTemplateNotFound, codes.NotFound},
		{"storage failure", fmt.Errorf("%w: disk I/O error", service.ErrStorageFailure), codes.Internal},
		{"unexpected", errors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRating := &mocks.MockRatingService{
				GetSessionFunc: func(ctx context.Context, requesterID, cycleMonth string) ([]service.SessionItem, error) {
					return nil, tc.err
				},
			}
			handlers := NewGRPCHandlers(mockRating, nil, zap.NewNop(), time.Minute)

			resp, err := handlers.GetSession(context.Background(), &pb.GetSessionRequest{RequesterId: "R", CycleMonth: "2024-03"})

			assert.Nil(t, resp)
			assert.Equal(t, tc.code, status.Code(err))
		})
	}

	t.Run("storage details are not leaked", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			GetSessionFunc: func(ctx context.Context, requesterID, cycleMonth string) ([]service.SessionItem, error) {
				return nil, fmt.Errorf("%w: near \"SELEC\": syntax error", service.ErrStorageFailure)
			},
		}
		handlers := NewGRPCHandlers(mockRating, nil, zap.NewNop(), time.Minute)

		_, err := handlers.GetSession(context.Background(), &pb.GetSessionRequest{RequesterId: "R"})
		assert.Equal(t, "database error", status.Convert(err).Message())
	})

	t.Run("canceled context", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			GetSessionFunc: func(ctx context.Context, requesterID, cycleMonth string) ([]service.SessionItem, error) {
				return nil, ctx.Err()
			},
		}
		handlers := NewGRPCHandlers(mockRating, nil, zap.NewNop(), time.Minute)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := handlers.GetSession(ctx, &pb.GetSessionRequest{RequesterId: "R"})
		assert.Equal(t, codes.Canceled, status.Code(err))
	})
}

func TestGetSession(t *testing.T) {
	submitted := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	mockRating := &mocks.MockRatingService{
		GetSessionFunc: func(ctx context.Context, requesterID, cycleMonth string) ([]service.SessionItem, error) {
			assert.Equal(t, "R", requesterID)
			assert.Equal(t, "2024-03", cycleMonth)
			return []service.SessionItem{
				{
					ExecutorID:      "E1",
					DisplayName:     "Alice",
					DisplayPosition: "Developer",
					Template: &models.RatingTemplate{
						ID: "T1", Version: 2, IsActive: true,
						Fields: []models.TemplateField{
							{ID: "F1", Label: "Quality", Kind: models.FieldKindScore, MaxScore: floatPtr(5), SortOrder: 1},
							{ID: "F2", Label: "Notes", Kind: models.FieldKindText, SortOrder: 2},
						},
					},
					Instance: &models.RatingInstance{ID: "I1", RequesterID: "R", ExecutorID: "E1", CycleMonth: "2024-03", TemplateID: "T1", SubmittedAt: submitted, UpdatedAt: submitted},
					Responses: []models.RatingResponse{
						{InstanceID: "I1", FieldID: "F1", ValueScore: floatPtr(4)},
						{InstanceID: "I1", FieldID: "F2", ValueText: strPtr("solid")},
					},
				},
				{ExecutorID: "E2", DisplayName: "Bob"},
			}, nil
		},
	}
	rec := &countingRecorder{}
	handlers := NewGRPCHandlers(mockRating, nil, zap.NewNop(), time.Minute, WithRecorder(rec))

	t.Run("maps items", func(t *testing.T) {
		resp, err := handlers.GetSession(context.Background(), &pb.GetSessionRequest{RequesterId: "R", CycleMonth: "2024-03"})
		require.NoError(t, err)

		assert.Equal(t, "2024-03", resp.CycleMonth)
		require.Len(t, resp.Items, 2)

		first := resp.Items[0]
		assert.Equal(t, "Developer", first.DisplayPosition)
		require.NotNil(t, first.Template)
		assert.Equal(t, int32(2), first.Template.Version)
		require.Len(t, first.Template.Fields, 2)
		assert.Equal(t, "score", first.Template.Fields[0].Kind)
		assert.Equal(t, 5.0, *first.Template.Fields[0].MaxScore)
		require.NotNil(t, first.Instance)
		assert.Equal(t, "I1", first.Instance.Id)
		assert.True(t, first.Instance.GetSubmittedAt().AsTime().Equal(submitted))
		require.Len(t, first.Responses, 2)
		assert.Equal(t, "solid", *first.Responses[1].ValueText)

		second := resp.Items[1]
		assert.Nil(t, second.Template)
		assert.Nil(t, second.Instance)
		assert.Empty(t, second.Responses)
		assert.Equal(t, 1, rec.misses)
	})

	t.Run("requester is required", func(t *testing.T) {
		_, err := handlers.GetSession(context.Background(), &pb.GetSessionRequest{CycleMonth: "2024-03"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestSubmitRatings(t *testing.T) {
	req := &pb.SubmitRatingsRequest{
		RequesterId: "R",
		CycleMonth:  "2024-03",
		Entries: []*pb.RatingEntry{
			{ExecutorId: "E1", TemplateId: "T1", Responses: []*pb.Response{{FieldId: "F1", ValueScore: floatPtr(5)}, nil}},
			{ExecutorId: "E2", TemplateId: "T1", Responses: []*pb.Response{{FieldId: "F2", ValueText: strPtr("great")}}},
		},
	}

	t.Run("success invalidates stats of rated executors", func(t *testing.T) {
		var got []service.SubmissionEntry
		mockRating := &mocks.MockRatingService{
			SubmitFunc: func(ctx context.Context, requesterID, cycleMonth string, entries []service.SubmissionEntry) error {
				got = entries
				return nil
			},
		}
		mockCache := &mocks.MockCacher{}
		rec := &countingRecorder{}
		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), time.Minute, WithRecorder(rec))

		resp, err := handlers.SubmitRatings(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, int32(2), resp.Submitted)
		assert.Equal(t, []service.SubmissionEntry{
			{ExecutorID: "E1", TemplateID: "T1", Responses: []service.ResponseInput{{FieldID: "F1", ValueScore: floatPtr(5)}}},
			{ExecutorID: "E2", TemplateID: "T1", Responses: []service.ResponseInput{{FieldID: "F2", ValueText: strPtr("great")}}},
		}, got)
		assert.Equal(t, []string{
			"grpc:executor_monthly_stats:E1:2024-03",
			"grpc:executor_monthly_stats:E2:2024-03",
		}, mockCache.Deleted())
		assert.Equal(t, 2, rec.submitted)
	})

	t.Run("rejected cycle keeps the cache", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			SubmitFunc: func(ctx context.Context, requesterID, cycleMonth string, entries []service.SubmissionEntry) error {
				return fmt.Errorf("%w: 2023-01 is outside the submission window", service.ErrInvalidCycle)
			},
		}
		mockCache := &mocks.MockCacher{}
		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), time.Minute)

		_, err := handlers.SubmitRatings(context.Background(), req)

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Empty(t, mockCache.Deleted())
	})

	t.Run("partial failure still invalidates the batch", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			SubmitFunc: func(ctx context.Context, requesterID, cycleMonth string, entries []service.SubmissionEntry) error {
				return fmt.Errorf("%w: score 9 exceeds max 5", service.ErrInvalidSubmission)
			},
		}
		mockCache := &mocks.MockCacher{}
		rec := &countingRecorder{}
		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), time.Minute, WithRecorder(rec))

		_, err := handlers.SubmitRatings(context.Background(), req)

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, status.Convert(err).Message(), "exceeds max")
		assert.Equal(t, []string{
			"grpc:executor_monthly_stats:E1:2024-03",
			"grpc:executor_monthly_stats:E2:2024-03",
		}, mockCache.Deleted())
		assert.Zero(t, rec.submitted)
	})

	t.Run("storage failure invalidates the batch", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			SubmitFunc: func(ctx context.Context, requesterID, cycleMonth string, entries []service.SubmissionEntry) error {
				return fmt.Errorf("%w: database is locked", service.ErrStorageFailure)
			},
		}
		mockCache := &mocks.MockCacher{}
		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), time.Minute)

		_, err := handlers.SubmitRatings(context.Background(), req)

		assert.Equal(t, codes.Internal, status.Code(err))
		assert.Len(t, mockCache.Deleted(), 2)
	})

	t.Run("invalidation failure does not fail the request", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			SubmitFunc: func(ctx context.Context, requesterID, cycleMonth string, entries []service.SubmissionEntry) error {
				return nil
			},
		}
		mockCache := &mocks.MockCacher{
			DeleteFunc: func(ctx context.Context, keys ...string) error { return errors.New("redis down") },
		}
		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), time.Minute)

		_, err := handlers.SubmitRatings(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("nil entry is rejected", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockRatingService{}, nil, zap.NewNop(), time.Minute)

		_, err := handlers.SubmitRatings(context.Background(), &pb.SubmitRatingsRequest{RequesterId: "R", Entries: []*pb.RatingEntry{nil}})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestGetExecutorMonthlyStats(t *testing.T) {
	stats := service.MonthlyStats{OverallAvg: floatPtr(4), FieldAvg: map[string]float64{"F1": 4}, RaterCount: 3, SampleSize: 3}

	t.Run("cache miss fetches and stores", func(t *testing.T) {
		calls := 0
		mockRating := &mocks.MockRatingService{
			ExecutorMonthlyStatsFunc: func(ctx context.Context, executorID, cycleMonth string) (service.MonthlyStats, error) {
				calls++
				return stats, nil
			},
		}
		var storedKey string
		mockCache := &mocks.MockCacher{
			SetFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
				storedKey = key
				assert.Equal(t, stats, value)
				assert.Positive(t, expiration)
				return nil
			},
		}
		rec := &countingRecorder{}
		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), time.Minute, WithRecorder(rec))

		resp, err := handlers.GetExecutorMonthlyStats(context.Background(), &pb.ExecutorStatsRequest{ExecutorId: "E1", CycleMonth: "2024-03"})
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, "grpc:executor_monthly_stats:E1:2024-03", storedKey)
		assert.Equal(t, 4.0, *resp.OverallAvg)
		assert.Equal(t, int32(3), resp.RaterCount)
		assert.Equal(t, int32(3), resp.SampleSize)
		assert.Equal(t, 1, rec.lookups)
		assert.Zero(t, rec.hits)
	})

	t.Run("cache hit is served from cache", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			ExecutorMonthlyStatsFunc: func(ctx context.Context, executorID, cycleMonth string) (service.MonthlyStats, error) {
				return stats, nil
			},
		}
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				cached := `{"overall_avg":3.5,"field_avg":{"F1":3.5},"rater_count":2,"sample_size":2}`
				return json.Unmarshal([]byte(cached), dest)
			},
		}
		rec := &countingRecorder{}
		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), time.Minute, WithRecorder(rec))

		resp, err := handlers.GetExecutorMonthlyStats(context.Background(), &pb.ExecutorStatsRequest{ExecutorId: "E1", CycleMonth: "2024-03"})
		require.NoError(t, err)

		assert.Equal(t, 3.5, *resp.OverallAvg)
		assert.Equal(t, int32(2), resp.RaterCount)
		rec.mu.Lock()
		assert.Equal(t, 1, rec.hits)
		rec.mu.Unlock()
	})

	t.Run("empty stats keep a non-nil field map", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			ExecutorMonthlyStatsFunc: func(ctx context.Context, executorID, cycleMonth string) (service.MonthlyStats, error) {
				return service.MonthlyStats{}, nil
			},
		}
		handlers := NewGRPCHandlers(mockRating, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.GetExecutorMonthlyStats(context.Background(), &pb.ExecutorStatsRequest{ExecutorId: "E1", CycleMonth: "2024-03"})
		require.NoError(t, err)

		assert.Nil(t, resp.OverallAvg)
		assert.NotNil(t, resp.FieldAvg)
		assert.Empty(t, resp.FieldAvg)
		assert.Zero(t, resp.RaterCount)
	})

	t.Run("invalid cycle is not cached", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			ExecutorMonthlyStatsFunc: func(ctx context.Context, executorID, cycleMonth string) (service.MonthlyStats, error) {
				return service.MonthlyStats{}, fmt.Errorf("%w: cycle month must be YYYY-MM", service.ErrInvalidCycle)
			},
		}
		mockCache := &mocks.MockCacher{
			SetFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
				t.Error("Set must not be called for a failed fetch")
				return nil
			},
		}
		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), time.Minute)

		_, err := handlers.GetExecutorMonthlyStats(context.Background(), &pb.ExecutorStatsRequest{ExecutorId: "E1", CycleMonth: "24-3"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("cycle outside the window ignores a cached entry", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			ValidateCycleFunc: func(cycleMonth string) error {
				assert.Equal(t, "2024-01", cycleMonth)
				return fmt.Errorf("%w: 2024-01 is outside the submission window", service.ErrInvalidCycle)
			},
			ExecutorMonthlyStatsFunc: func(ctx context.Context, executorID, cycleMonth string) (service.MonthlyStats, error) {
				t.Error("stats must not be computed for a closed cycle")
				return stats, nil
			},
		}
		getCalls := 0
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				getCalls++
				cached := `{"overall_avg":4,"field_avg":{"F1":4},"rater_count":3,"sample_size":3}`
				return json.Unmarshal([]byte(cached), dest)
			},
		}
		handlers := NewGRPCHandlers(mockRating, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.GetExecutorMonthlyStats(context.Background(), &pb.ExecutorStatsRequest{ExecutorId: "E1", CycleMonth: "2024-01"})

		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Zero(t, getCalls)
	})

	t.Run("executor is required", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockRatingService{}, nil, zap.NewNop(), time.Minute)

		_, err := handlers.GetExecutorMonthlyStats(context.Background(), &pb.ExecutorStatsRequest{CycleMonth: "2024-03"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestResolveTemplate(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			ResolveTemplateFunc: func(ctx context.Context, department, position string) (*models.RatingTemplate, error) {
				assert.Equal(t, "tech", department)
				assert.Equal(t, "dev", position)
				return &models.RatingTemplate{ID: "T2", Version: 2, IsActive: true}, nil
			},
		}
		handlers := NewGRPCHandlers(mockRating, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.ResolveTemplate(context.Background(), &pb.ResolveTemplateRequest{Department: "tech", Position: "dev"})
		require.NoError(t, err)
		assert.Equal(t, "T2", resp.Template.Id)
		assert.NotNil(t, resp.Template.Fields)
	})

	t.Run("not found", func(t *testing.T) {
		mockRating := &mocks.MockRatingService{
			ResolveTemplateFunc: func(ctx context.Context, department, position string) (*models.RatingTemplate, error) {
				return nil, service.ErrTemplateNotFound
			},
		}
		rec := &countingRecorder{}
		handlers := NewGRPCHandlers(mockRating, nil, zap.NewNop(), time.Minute, WithRecorder(rec))

		_, err := handlers.ResolveTemplate(context.Background(), &pb.ResolveTemplateRequest{Department: "sales", Position: "dev"})
		assert.Equal(t, codes.NotFound, status.Code(err))
		assert.Equal(t, 1, rec.misses)
	})
}

func TestListAllowedCycles(t *testing.T) {
	mockRating := &mocks.MockRatingService{
		AllowedCyclesFunc: func() []string { return []string{"2024-03", "2024-02"} },
	}
	handlers := NewGRPCHandlers(mockRating, nil, zap.NewNop(), time.Minute)

	resp, err := handlers.ListAllowedCycles(context.Background(), &pb.ListAllowedCyclesRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03", "2024-02"}, resp.Cycles)
}
