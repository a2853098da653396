package clientservice

import (
	"context"
	"crypto/subtle"
	"database/sql"

	"github.com/google/uuid"

	"github.com/draftwerk/studiohub/internal/common"
)

func NewClientService(db *sql.DB, cipher *Cipher) *ClientService {
	return &ClientService{m: newClientModel(db), cipher: cipher}
}

type CreateClientRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateClient stores a new portal credential record. The password is
// encrypted, not hashed, so the admin list can show it again.
func (s *ClientService) CreateClient(ctx context.Context, req *CreateClientRequest) (*Client, error) {
	v := common.NewValidator()
	validateUsername(v, req.Username)
	validatePassword(v, req.Password)
	validateRole(v, req.Role)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	encrypted, err := s.cipher.Encrypt(req.Password)
	if err != nil {
		return nil, err
	}

	client := &Client{
		ID:       uuid.NewString(),
		Username: req.Username,
		Role:     req.Role,
	}

	if err := s.m.insert(ctx, client, encrypted); err != nil {
		return nil, err
	}

	client.Password = req.Password

	return client, nil
}

// GetClients returns all portal credentials with decrypted passwords for the
// admin copy-to-clipboard affordance.
func (s *ClientService) GetClients(ctx context.Context) ([]Client, error) {
	clients, encrypted, err := s.m.getAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range clients {
		plain, err := s.cipher.Decrypt(encrypted[i])
		if err != nil {
			return nil, err
		}
		clients[i].Password = plain
	}

	return clients, nil
}

// Authenticate checks a portal login. The stored password is decrypted and
// compared in constant time; unknown usernames and wrong passwords both return
// ErrAuthenticationFailure.
func (s *ClientService) Authenticate(ctx context.Context, username, password string) (*Client, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	v.Check(password != "", "password", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	client, encrypted, err := s.m.getByUsername(ctx, username)
	if err != nil {
		switch err {
		case ErrRecordNotFound:
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	plain, err := s.cipher.Decrypt(encrypted)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(plain), []byte(password)) != 1 {
		return nil, ErrAuthenticationFailure
	}

	client.Password = ""

	return client, nil
}

// DeleteClient removes a portal credential record.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	v := common.NewValidator()
	v.Check(id != "", "id", "must be provided")
	if id != "" {
		_, err := uuid.Parse(id)
		v.Check(err == nil, "id", "must be a valid UUID")
	}
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.delete(ctx, id)
}
