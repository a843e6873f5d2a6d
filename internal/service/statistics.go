package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// StatisticsAggregator computes an executor's monthly rating aggregate.
type StatisticsAggregator struct {
	cycles    *CycleValidator
	instances RatingInstanceRepository
	responses RatingResponseRepository
	logger    *zap.Logger
}

func NewStatisticsAggregator(cycles *CycleValidator, instances RatingInstanceRepository, responses RatingResponseRepository, logger *zap.Logger) *StatisticsAggregator {
	if cycles == nil || instances == nil || responses == nil {
		panic("statistics aggregator dependencies must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatisticsAggregator{
		cycles:    cycles,
		instances: instances,
		responses: responses,
		logger:    logger.Named("statistics"),
	}
}

// ExecutorMonthlyStats averages the numeric answers given to the executor in
// the cycle. Free-text answers are ignored. No ratings is not an error.
func (a *StatisticsAggregator) ExecutorMonthlyStats(ctx context.Context, executorID, cycleMonth string) (MonthlyStats, error) {
	cycle, err := a.cycles.Validate(cycleMonth)
	if err != nil {
		return MonthlyStats{}, err
	}

	stats := MonthlyStats{FieldAvg: make(map[string]float64)}

	instances, err := a.instances.ListByExecutorCycle(ctx, executorID, cycle.String())
	if err != nil {
		return MonthlyStats{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(instances) == 0 {
		return stats, nil
	}

	ids := make([]string, len(instances))
	raters := make(map[string]struct{}, len(instances))
	for i, inst := range instances {
		ids[i] = inst.ID
		raters[inst.RequesterID] = struct{}{}
	}
	stats.RaterCount = len(raters)

	responses, err := a.responses.ListByInstances(ctx, ids)
	if err != nil {
		return MonthlyStats{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	var total float64
	fieldSum := make(map[string]float64)
	fieldCount := make(map[string]int)
	for _, r := range responses {
		if r.ValueScore == nil {
			continue
		}
		total += *r.ValueScore
		fieldSum[r.FieldID] += *r.ValueScore
		fieldCount[r.FieldID]++
		stats.SampleSize++
	}

	if stats.SampleSize > 0 {
		avg := roundToTenth(total / float64(stats.SampleSize))
		stats.OverallAvg = &avg
	}
	for field, sum := range fieldSum {
		stats.FieldAvg[field] = roundToTenth(sum / float64(fieldCount[field]))
	}

	a.logger.Debug("computed executor stats",
		zap.String("executor", executorID),
		zap.String("cycle", cycle.String()),
		zap.Int("raters", stats.RaterCount),
		zap.Int("samples", stats.SampleSize))
	return stats, nil
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
