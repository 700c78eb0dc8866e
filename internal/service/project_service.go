package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"postdeck/internal/api"
	"postdeck/internal/models"
	"postdeck/internal/transfer"
)

type ProjectService interface {
	List(ctx context.Context) ([]*models.Project, error)
	Create(ctx context.Context, pc *transfer.ProjectCreation) (*models.Project, error)
}

type projectService struct {
	c *api.Client
}

func NewProjectService(c *api.Client) ProjectService {
	return &projectService{
		c: c,
	}
}

func (s *projectService) List(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	if err := s.c.Do(ctx, http.MethodGet, "projects", nil, true, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *projectService) Create(ctx context.Context, pc *transfer.ProjectCreation) (*models.Project, error) {
	if pc == nil {
		err := errors.New("project creation data is nil")
		slog.Error(err.Error())
		return nil, err
	}
	if strings.TrimSpace(pc.Name) == "" {
		err := errors.New("project name cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	var project models.Project
	if err := s.c.Do(ctx, http.MethodPost, "projects", pc, true, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
