package grpc

import (
	"context"
	"time"

	"github.com/godilite/collab-rating/internal/repository/models"
	"github.com/godilite/collab-rating/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type RatingService interface {
	GetSession(ctx context.Context, requesterID, cycleMonth string) ([]service.SessionItem, error)
	Submit(ctx context.Context, requesterID, cycleMonth string, entries []service.SubmissionEntry) error
	ExecutorMonthlyStats(ctx context.Context, executorID, cycleMonth string) (service.MonthlyStats, error)
	ResolveTemplate(ctx context.Context, department, position string) (*models.RatingTemplate, error)
	AllowedCycles() []string
	ValidateCycle(cycleMonth string) error
}

// Recorder receives domain counters from the handlers. *metrics.Manager
// satisfies it.
type Recorder interface {
	AddRatingsSubmitted(n int)
	IncTemplateMiss()
	RecordCacheLookup(hit bool)
}

type nopRecorder struct{}

func (nopRecorder) AddRatingsSubmitted(int) {}
func (nopRecorder) IncTemplateMiss()        {}
func (nopRecorder) RecordCacheLookup(bool)  {}
