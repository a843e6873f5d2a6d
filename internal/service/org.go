package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/godilite/collab-rating/internal/repository/models"
)

// OrgResolver reconciles department and position values that may be stored
// either as org codes or as display names.
type OrgResolver struct {
	directory OrgDirectoryRepository
}

func NewOrgResolver(directory OrgDirectoryRepository) *OrgResolver {
	if directory == nil {
		panic("directory must not be nil")
	}
	return &OrgResolver{directory: directory}
}

// OrgValue is a resolved department or position.
type OrgValue struct {
	Code string
	Name string
}

func (r *OrgResolver) Department(ctx context.Context, value string) (OrgValue, error) {
	return r.resolve(ctx, value, r.directory.FindDepartment)
}

func (r *OrgResolver) Position(ctx context.Context, value string) (OrgValue, error) {
	return r.resolve(ctx, value, r.directory.FindPosition)
}

// DepartmentCandidates returns value plus the code and name of the
// department it maps to.
func (r *OrgResolver) DepartmentCandidates(ctx context.Context, value string) ([]string, error) {
	return r.candidates(ctx, value, r.directory.FindDepartment)
}

// PositionCandidates returns value plus the code and name of the position it
// maps to.
func (r *OrgResolver) PositionCandidates(ctx context.Context, value string) ([]string, error) {
	return r.candidates(ctx, value, r.directory.FindPosition)
}

type unitLookup func(ctx context.Context, value string) (*models.OrgUnit, error)

// resolve maps value to its directory code. Values with no directory record
// are kept as-is; empty values become GeneralOrgValue.
func (r *OrgResolver) resolve(ctx context.Context, value string, lookup unitLookup) (OrgValue, error) {
	if value == "" {
		return OrgValue{Code: GeneralOrgValue, Name: GeneralOrgValue}, nil
	}
	unit, err := lookup(ctx, value)
	if err != nil {
		return OrgValue{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if unit == nil {
		return OrgValue{Code: value, Name: value}, nil
	}
	return OrgValue{Code: unit.Code, Name: unit.Name}, nil
}

func (r *OrgResolver) candidates(ctx context.Context, value string, lookup unitLookup) ([]string, error) {
	out := []string{value}
	unit, err := lookup(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if unit == nil {
		return out, nil
	}
	for _, v := range []string{unit.Code, unit.Name} {
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}
