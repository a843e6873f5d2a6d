package service

import (
	"context"
	"fmt"

	"github.com/godilite/collab-rating/internal/repository/models"
	"go.uber.org/zap"
)

// TemplateResolver picks the rating template for a department/position pair.
type TemplateResolver struct {
	templates RatingTemplateRepository
	org       *OrgResolver
	logger    *zap.Logger
}

func NewTemplateResolver(templates RatingTemplateRepository, directory OrgDirectoryRepository, logger *zap.Logger) *TemplateResolver {
	if templates == nil || directory == nil {
		panic("template resolver dependencies must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateResolver{
		templates: templates,
		org:       NewOrgResolver(directory),
		logger:    logger.Named("template"),
	}
}

// ResolveStrict returns the active, highest-version template for the pair.
// Either argument may be an org code or a display name. It fails with
// ErrTemplateNotFound when nothing applies.
func (r *TemplateResolver) ResolveStrict(ctx context.Context, department, position string) (*models.RatingTemplate, error) {
	depts, err := r.org.DepartmentCandidates(ctx, department)
	if err != nil {
		return nil, err
	}
	positions, err := r.org.PositionCandidates(ctx, position)
	if err != nil {
		return nil, err
	}

	tpl, err := r.templates.FindApplicable(ctx, depts, positions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if tpl == nil {
		return nil, fmt.Errorf("%w for department %q position %q", ErrTemplateNotFound, department, position)
	}

	r.logger.Debug("template resolved",
		zap.String("department", department),
		zap.String("position", position),
		zap.String("template", tpl.ID),
		zap.Int("version", tpl.Version))
	return tpl, nil
}

// Get loads a template by id, failing with ErrTemplateNotFound if it does not
// exist.
func (r *TemplateResolver) Get(ctx context.Context, templateID string) (*models.RatingTemplate, error) {
	tpl, err := r.templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if tpl == nil {
		return nil, fmt.Errorf("%w: template %q does not exist", ErrTemplateNotFound, templateID)
	}
	return tpl, nil
}
