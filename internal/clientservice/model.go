package clientservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/draftwerk/studiohub/internal/common"
)

var (
	ErrRecordNotFound        = common.ErrRecordNotFound
	ErrDuplicateUsername     = errors.New("duplicate username")
	ErrAuthenticationFailure = errors.New("invalid client credentials")
)

func newClientModel(db *sql.DB) *ClientModel {
	return &ClientModel{db: db}
}

func (m *ClientModel) insert(ctx context.Context, c *Client, encryptedPassword string) error {
	query := `
		INSERT INTO clients (id, username, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := m.db.QueryRowContext(ctx, query, c.ID, c.Username, encryptedPassword, c.Role).Scan(&c.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "clients_username_key" {
			return ErrDuplicateUsername
		}
		return err
	}

	return nil
}

func (m *ClientModel) getByUsername(ctx context.Context, username string) (*Client, string, error) {
	query := `
		SELECT id, username, password, role, created_at
		FROM clients
		WHERE username = $1`

	var c Client
	var encrypted string
	err := m.db.QueryRowContext(ctx, query, username).Scan(&c.ID, &c.Username, &encrypted, &c.Role, &c.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, "", ErrRecordNotFound
		default:
			return nil, "", err
		}
	}

	return &c, encrypted, nil
}

func (m *ClientModel) getAll(ctx context.Context) ([]Client, []string, error) {
	query := `
		SELECT id, username, password, role, created_at
		FROM clients
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var clients []Client
	var encrypted []string
	for rows.Next() {
		var c Client
		var e string
		if err := rows.Scan(&c.ID, &c.Username, &e, &c.Role, &c.CreatedAt); err != nil {
			return nil, nil, err
		}
		clients = append(clients, c)
		encrypted = append(encrypted, e)
	}

	return clients, encrypted, rows.Err()
}

func (m *ClientModel) delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM clients
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
