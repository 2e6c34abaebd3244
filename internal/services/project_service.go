package services

import (
	"context"

	"go.uber.org/zap"

	"vicheka.dev/internal/listview"
	"vicheka.dev/internal/models"
)

// ProjectSource fetches projects from the backend
type ProjectSource interface {
	Projects(ctx context.Context) ([]models.Project, error)
}

// ProjectService loads the projects gallery
type ProjectService struct {
	controller *listview.Controller[models.Project]
}

// NewProjectService creates a new ProjectService
func NewProjectService(src ProjectSource, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		controller: listview.NewController("projects", src.Projects, logger),
	}
}

// Load fetches all projects and applies the interactions in p
func (s *ProjectService) Load(ctx context.Context, p listview.Params) listview.State[models.Project] {
	return s.controller.Load(ctx).Apply(p)
}
