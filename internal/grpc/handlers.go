package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	pb "github.com/godilite/collab-rating/api/v1"
	"github.com/godilite/collab-rating/internal/repository/models"
	"github.com/godilite/collab-rating/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

const cacheKeyExecutorStats = "grpc:executor_monthly_stats"

type GRPCHandlers struct {
	pb.UnimplementedRatingServiceServer
	rating   RatingService
	cache    Cacher
	recorder Recorder
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

type HandlerOption func(*GRPCHandlers)

// WithRecorder reports submissions, template misses and cache lookups.
func WithRecorder(rec Recorder) HandlerOption {
	return func(h *GRPCHandlers) {
		if rec != nil {
			h.recorder = rec
		}
	}
}

// NewGRPCHandlers initializes the gRPC handlers. A nil cache disables stats
// caching.
func NewGRPCHandlers(rating RatingService, cache Cacher, logger *zap.Logger, ttl time.Duration, opts ...HandlerOption) *GRPCHandlers {
	if rating == nil {
		panic("nil RatingService provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	h := &GRPCHandlers{
		rating:   rating,
		cache:    cache,
		recorder: nopRecorder{},
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func statsCacheKey(executorID, cycleMonth string) string {
	return fmt.Sprintf("%s:%s:%s", cacheKeyExecutorStats, executorID, cycleMonth)
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrInvalidCycle), errors.Is(err, service.ErrInvalidSubmission):
		s.logger.Info("invalid request", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrTemplateNotFound):
		s.logger.Info("no applicable template", zap.String("op", op))
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) GetSession(ctx context.Context, req *pb.GetSessionRequest) (*pb.SessionResponse, error) {
	if req.GetRequesterId() == "" {
		return nil, status.Error(codes.InvalidArgument, "requester_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	items, err := s.rating.GetSession(ctx, req.GetRequesterId(), req.GetCycleMonth())
	if err != nil {
		return nil, s.handleError(ctx, "GetSession", err)
	}

	out := make([]*pb.SessionItem, len(items))
	for i, item := range items {
		if item.Template == nil {
			s.recorder.IncTemplateMiss()
		}
		out[i] = toSessionItem(item)
	}
	return &pb.SessionResponse{CycleMonth: req.GetCycleMonth(), Items: out}, nil
}

func (s *GRPCHandlers) SubmitRatings(ctx context.Context, req *pb.SubmitRatingsRequest) (*pb.SubmitRatingsResponse, error) {
	if req.GetRequesterId() == "" {
		return nil, status.Error(codes.InvalidArgument, "requester_id is required")
	}

	entries := make([]service.SubmissionEntry, 0, len(req.GetEntries()))
	for i, e := range req.GetEntries() {
		if e == nil {
			return nil, status.Errorf(codes.InvalidArgument, "entry %d is empty", i)
		}
		entries = append(entries, toSubmissionEntry(e))
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	if err := s.rating.Submit(ctx, req.GetRequesterId(), req.GetCycleMonth(), entries); err != nil {
		// Entries saved before the failure still changed their executors' stats.
		if !errors.Is(err, service.ErrInvalidCycle) {
			s.invalidateStats(ctx, req.GetCycleMonth(), entries)
		}
		return nil, s.handleError(ctx, "SubmitRatings", err)
	}
	s.recorder.AddRatingsSubmitted(len(entries))
	s.invalidateStats(ctx, req.GetCycleMonth(), entries)

	return &pb.SubmitRatingsResponse{Submitted: int32(len(entries))}, nil
}

// invalidateStats drops cached stats of every executor that was just rated.
// A failure only delays freshness until the TTL runs out.
func (s *GRPCHandlers) invalidateStats(ctx context.Context, cycleMonth string, entries []service.SubmissionEntry) {
	if s.cache == nil || len(entries) == 0 {
		return
	}
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = statsCacheKey(e.ExecutorID, cycleMonth)
	}
	if err := s.cache.Delete(context.WithoutCancel(ctx), keys...); err != nil {
		s.logger.Warn("failed to invalidate stats cache",
			zap.String("cycle", cycleMonth),
			zap.Strings("keys", keys),
			zap.Error(err))
	}
}

func (s *GRPCHandlers) GetExecutorMonthlyStats(ctx context.Context, req *pb.ExecutorStatsRequest) (*pb.ExecutorStatsResponse, error) {
	if req.GetExecutorId() == "" {
		return nil, status.Error(codes.InvalidArgument, "executor_id is required")
	}

	// A cached answer must not outlive the submission window.
	if err := s.rating.ValidateCycle(req.GetCycleMonth()); err != nil {
		return nil, s.handleError(ctx, "GetExecutorMonthlyStats", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	key := statsCacheKey(req.GetExecutorId(), req.GetCycleMonth())
	stats, err := FindAndCache(ctx, s.cache, &s.sfGroup, key, s.cacheTTL, s.logger, s.recorder, func(fetchCtx context.Context) (service.MonthlyStats, error) {
		return s.rating.ExecutorMonthlyStats(fetchCtx, req.GetExecutorId(), req.GetCycleMonth())
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetExecutorMonthlyStats", err)
	}

	fieldAvg := stats.FieldAvg
	if fieldAvg == nil {
		fieldAvg = map[string]float64{}
	}
	return &pb.ExecutorStatsResponse{
		OverallAvg: stats.OverallAvg,
		FieldAvg:   fieldAvg,
		RaterCount: int32(stats.RaterCount),
		SampleSize: int32(stats.SampleSize),
	}, nil
}

func (s *GRPCHandlers) ResolveTemplate(ctx context.Context, req *pb.ResolveTemplateRequest) (*pb.ResolveTemplateResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	tpl, err := s.rating.ResolveTemplate(ctx, req.GetDepartment(), req.GetPosition())
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			s.recorder.IncTemplateMiss()
		}
		return nil, s.handleError(ctx, "ResolveTemplate", err)
	}
	return &pb.ResolveTemplateResponse{Template: toTemplate(tpl)}, nil
}

func (s *GRPCHandlers) ListAllowedCycles(_ context.Context, _ *pb.ListAllowedCyclesRequest) (*pb.ListAllowedCyclesResponse, error) {
	return &pb.ListAllowedCyclesResponse{Cycles: s.rating.AllowedCycles()}, nil
}

func toSessionItem(item service.SessionItem) *pb.SessionItem {
	out := &pb.SessionItem{
		ExecutorId:      item.ExecutorID,
		DisplayName:     item.DisplayName,
		DisplayTitle:    item.DisplayTitle,
		DisplayPosition: item.DisplayPosition,
		Template:        toTemplate(item.Template),
		Responses:       make([]*pb.Response, len(item.Responses)),
	}
	if inst := item.Instance; inst != nil {
		out.Instance = &pb.Instance{
			Id:          inst.ID,
			RequesterId: inst.RequesterID,
			ExecutorId:  inst.ExecutorID,
			CycleMonth:  inst.CycleMonth,
			TemplateId:  inst.TemplateID,
			SubmittedAt: timestamppb.New(inst.SubmittedAt),
			UpdatedAt:   timestamppb.New(inst.UpdatedAt),
		}
	}
	for i, r := range item.Responses {
		out.Responses[i] = &pb.Response{FieldId: r.FieldID, ValueScore: r.ValueScore, ValueText: r.ValueText}
	}
	return out
}

func toTemplate(tpl *models.RatingTemplate) *pb.Template {
	if tpl == nil {
		return nil
	}
	fields := make([]*pb.TemplateField, len(tpl.Fields))
	for i, f := range tpl.Fields {
		fields[i] = &pb.TemplateField{
			Id:        f.ID,
			Label:     f.Label,
			Kind:      string(f.Kind),
			MaxScore:  f.MaxScore,
			Required:  f.Required,
			SortOrder: int32(f.SortOrder),
		}
	}
	return &pb.Template{
		Id:         tpl.ID,
		Name:       tpl.Name,
		Department: tpl.Department,
		Position:   tpl.Position,
		Version:    int32(tpl.Version),
		IsActive:   tpl.IsActive,
		Fields:     fields,
	}
}

func toSubmissionEntry(e *pb.RatingEntry) service.SubmissionEntry {
	responses := make([]service.ResponseInput, 0, len(e.GetResponses()))
	for _, r := range e.GetResponses() {
		if r == nil {
			continue
		}
		responses = append(responses, service.ResponseInput{
			FieldID:    r.GetFieldId(),
			ValueScore: r.ValueScore,
			ValueText:  r.ValueText,
		})
	}
	return service.SubmissionEntry{
		ExecutorID: e.GetExecutorId(),
		TemplateID: e.GetTemplateId(),
		Responses:  responses,
	}
}
