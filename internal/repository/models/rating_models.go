package models

import "time"

// FieldKind distinguishes scorable template fields from free-text ones.
type FieldKind string

const (
	FieldKindScore FieldKind = "score"
	FieldKindText  FieldKind = "text"
)

// WorkItem is a completed unit of collaboration between a requester and
// one or more executors. Read-only to the rating engine.
type WorkItem struct {
	ID          string
	Title       string
	RequesterID string
	ExecutorID  string
	Status      string
	CompletedAt time.Time
	Assignees   []WorkItemAssignee
}

// WorkItemAssignee is a secondary executor attached to a work item. Position
// is whatever the work item recorded at assignment time and may be empty.
type WorkItemAssignee struct {
	UserID   string
	Position string
}

// UserIdentity is a user's directory entry. Department and Position may hold
// either an org code or a display name.
type UserIdentity struct {
	ID          string
	DisplayName string
	Title       string
	Department  string
	Position    string
}

// OrgUnit is a department or position directory record.
type OrgUnit struct {
	Code string
	Name string
}

type TemplateField struct {
	ID        string
	Label     string
	Kind      FieldKind
	MaxScore  *float64
	Required  bool
	SortOrder int
}

type RatingTemplate struct {
	ID         string
	Name       string
	Department string
	Position   string
	Version    int
	IsActive   bool
	Fields     []TemplateField
}

type RatingInstance struct {
	ID          string
	RequesterID string
	ExecutorID  string
	CycleMonth  string
	TemplateID  string
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// RatingResponse holds one answer. Exactly one of ValueScore or ValueText is
// set for well-formed rows.
type RatingResponse struct {
	InstanceID string
	FieldID    string
	ValueScore *float64
	ValueText  *string
}
