package clientservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftwerk/studiohub/internal/common"
)

func setupTestEnvironment(t *testing.T) (*ClientService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cipher, err := NewCipher(testKey)
	assert.NoError(t, err)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM clients")
		return err
	}

	return NewClientService(db, cipher), db, cleanup
}

func TestCreateClient(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	client, err := s.CreateClient(context.Background(), &CreateClientRequest{
		Username: "acme-portal",
		Password: "s3cretPass!",
		Role:     "client",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.Equal(t, "s3cretPass!", client.Password)

	// the stored column holds ciphertext, never the plain password
	var stored string
	assert.NoError(t, db.QueryRow("SELECT password FROM clients WHERE id = $1", client.ID).Scan(&stored))
	assert.NotEqual(t, "s3cretPass!", stored)

	// duplicate username conflicts
	_, err = s.CreateClient(context.Background(), &CreateClientRequest{
		Username: "acme-portal",
		Password: "otherPass123",
		Role:     "client",
	})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	assert.NoError(t, cleanup())
}

func TestGetClientsDecryptsPasswords(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	_, err := s.CreateClient(context.Background(), &CreateClientRequest{
		Username: "acme-portal",
		Password: "s3cretPass!",
		Role:     "client",
	})
	assert.NoError(t, err)

	clients, err := s.GetClients(context.Background())
	assert.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.Equal(t, "s3cretPass!", clients[0].Password)

	assert.NoError(t, cleanup())
}

func TestAuthenticate(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	_, err := s.CreateClient(context.Background(), &CreateClientRequest{
		Username: "acme-portal",
		Password: "s3cretPass!",
		Role:     "client",
	})
	assert.NoError(t, err)

	client, err := s.Authenticate(context.Background(), "acme-portal", "s3cretPass!")
	assert.NoError(t, err)
	assert.Equal(t, "acme-portal", client.Username)
	assert.Empty(t, client.Password)

	_, err = s.Authenticate(context.Background(), "acme-portal", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)

	_, err = s.Authenticate(context.Background(), "no-such-user", "s3cretPass!")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)

	assert.NoError(t, cleanup())
}

func TestDeleteClient(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	client, err := s.CreateClient(context.Background(), &CreateClientRequest{
		Username: "acme-portal",
		Password: "s3cretPass!",
		Role:     "partner",
	})
	assert.NoError(t, err)

	assert.NoError(t, s.DeleteClient(context.Background(), client.ID))
	assert.ErrorIs(t, s.DeleteClient(context.Background(), client.ID), ErrRecordNotFound)

	assert.NoError(t, cleanup())
}
