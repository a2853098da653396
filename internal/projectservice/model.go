package projectservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/draftwerk/studiohub/internal/common"
)

var (
	ErrRecordNotFound = common.ErrRecordNotFound
	ErrDuplicateTitle = errors.New("duplicate title")
)

func newProjectModel(db *sql.DB) *ProjectModel {
	return &ProjectModel{db: db}
}

func (m *ProjectModel) insert(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (title, description, tags, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, project.Title, project.Description, pq.Array(project.Tags), project.ImageURL).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "projects_title_key" {
			return ErrDuplicateTitle
		}
		return err
	}

	return nil
}

func (m *ProjectModel) getByID(ctx context.Context, id int) (*Project, error) {
	query := `
		SELECT id, title, description, tags, image_url, created_at, updated_at
		FROM projects
		WHERE id = $1`

	var project Project
	err := m.db.QueryRowContext(ctx, query, id).Scan(&project.ID, &project.Title, &project.Description, pq.Array(&project.Tags), &project.ImageURL, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &project, nil
}

func (m *ProjectModel) getAll(ctx context.Context) ([]Project, error) {
	query := `
		SELECT id, title, description, tags, image_url, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var project Project
		err := rows.Scan(&project.ID, &project.Title, &project.Description, pq.Array(&project.Tags), &project.ImageURL, &project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

func (m *ProjectModel) delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM projects
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}
