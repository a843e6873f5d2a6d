package service

import "github.com/godilite/collab-rating/internal/repository/models"

// GeneralOrgValue stands in for a department or position that could not be
// resolved from any source.
const GeneralOrgValue = "general"

type Collaborator struct {
	ExecutorID      string
	Department      string
	Position        string
	DisplayName     string
	DisplayTitle    string
	DisplayPosition string
}

// SessionItem is the resumable rating state for one executor. Template is nil
// when no template is configured for the executor's role.
type SessionItem struct {
	ExecutorID      string
	DisplayName     string
	DisplayTitle    string
	DisplayPosition string
	Template        *models.RatingTemplate
	Instance        *models.RatingInstance
	Responses       []models.RatingResponse
}

type ResponseInput struct {
	FieldID    string
	ValueScore *float64
	ValueText  *string
}

type SubmissionEntry struct {
	ExecutorID string
	TemplateID string
	Responses  []ResponseInput
}

// MonthlyStats is an executor's aggregate for one cycle. OverallAvg is nil
// when there is nothing to average.
type MonthlyStats struct {
	OverallAvg *float64           `json:"overall_avg"`
	FieldAvg   map[string]float64 `json:"field_avg"`
	RaterCount int                `json:"rater_count"`
	SampleSize int                `json:"sample_size"`
}
