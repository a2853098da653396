package projectservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftwerk/studiohub/internal/common"
)

func setupTestEnvironment(t *testing.T) (*ProjectService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM projects")
		return err
	}

	return NewProjectService(db), db, cleanup
}

func TestCreateProject(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	req := &CreateProjectRequest{
		Title:       "Brand Refresh",
		Description: "Full identity redesign for a retail client.",
		Tags:        []string{"branding", "design"},
		ImageURL:    "https://res.imghost.example/projects/brand-refresh.jpg",
	}

	project, err := s.CreateProject(context.Background(), req)
	assert.NoError(t, err)
	assert.NotZero(t, project.ID)

	// same title again must conflict and not insert a second row
	_, err = s.CreateProject(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	var count int
	assert.NoError(t, db.QueryRow("SELECT count(*) FROM projects WHERE title = $1", req.Title).Scan(&count))
	assert.Equal(t, 1, count)

	assert.NoError(t, cleanup())
}

func TestCreateProjectValidation(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	_, err := s.CreateProject(context.Background(), &CreateProjectRequest{})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{
		"title":       "must be provided",
		"description": "must be provided",
	}}, err)

	assert.NoError(t, cleanup())
}

func TestDeleteProject(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	project, err := s.CreateProject(context.Background(), &CreateProjectRequest{
		Title:       "Launch Site",
		Description: "Marketing site for a product launch.",
	})
	assert.NoError(t, err)

	assert.NoError(t, s.DeleteProject(context.Background(), project.ID))
	assert.ErrorIs(t, s.DeleteProject(context.Background(), project.ID), ErrRecordNotFound)

	_, err = s.GetProjectByID(context.Background(), project.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.NoError(t, cleanup())
}

func TestGetProjects(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := s.CreateProject(context.Background(), &CreateProjectRequest{
			Title:       title,
			Description: "A project.",
		})
		assert.NoError(t, err)
	}

	projects, err := s.GetProjects(context.Background())
	assert.NoError(t, err)
	assert.Len(t, projects, 3)

	assert.NoError(t, cleanup())
}
