package projectservice

import (
	"context"
	"database/sql"

	"github.com/draftwerk/studiohub/internal/common"
)

func NewProjectService(db *sql.DB) *ProjectService {
	return &ProjectService{m: newProjectModel(db)}
}

type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
}

// CreateProject stores a new portfolio project. Titles are unique; a duplicate
// returns ErrDuplicateTitle without inserting a second row.
func (s *ProjectService) CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateDescription(v, req.Description)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	project := &Project{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
	}

	if err := s.m.insert(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// GetProjectByID returns a project by its ID.
func (s *ProjectService) GetProjectByID(ctx context.Context, id int) (*Project, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByID(ctx, id)
}

// GetProjects returns all projects newest-first. The admin page filters
// client-side, so there is no server-side pagination here.
func (s *ProjectService) GetProjects(ctx context.Context) ([]Project, error) {
	return s.m.getAll(ctx)
}

// DeleteProject removes a project by ID.
func (s *ProjectService) DeleteProject(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.delete(ctx, id)
}
