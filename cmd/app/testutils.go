package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/draftwerk/studiohub/internal/blogservice"
	"github.com/draftwerk/studiohub/internal/clientservice"
	"github.com/draftwerk/studiohub/internal/common"
	"github.com/draftwerk/studiohub/internal/engageservice"
	"github.com/draftwerk/studiohub/internal/mediaservice"
	"github.com/draftwerk/studiohub/internal/projectservice"
	"github.com/draftwerk/studiohub/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, envelope
}

// data unwraps the success payload of a response envelope.
func data(t *testing.T, env envelope) map[string]any {
	payload, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("response envelope has no data object: %v", env)
	}

	return payload
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	rabbitURI := common.TestRabbitMQ(t)
	rabbitmq, err := common.NewMessageBroker(rabbitURI)
	assert.NoError(t, err)

	err = common.SetupEngagementExchange(rabbitmq)
	assert.NoError(t, err)

	cfg, err := loadConfig("../../.test.env")
	assert.NoError(t, err)

	cipher, err := clientservice.NewCipher(cfg.CryptoKey)
	assert.NoError(t, err)

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	app := &application{
		config:         cfg,
		logger:         logger,
		userService:    userservice.NewUserService(db),
		blogService:    blogservice.NewBlogService(db, cache),
		projectService: projectservice.NewProjectService(db),
		engageService:  engageservice.NewEngageService(db, rabbitmq),
		clientService:  clientservice.NewClientService(db, cipher),
		mediaService:   mediaservice.NewMediaService(cfg.Media.BaseURL, cfg.Media.UploadPreset),
		broker:         rabbitmq,
	}

	return app, db
}

// registerAdmin runs the full register, activate, login flow and returns the
// access token for an account holding every permission.
func registerAdmin(t *testing.T, ts *testServer) string {
	status, _, env := ts.post(t, "/api/users/register", map[string]any{
		"username": "admin42",
		"email":    "admin@example.com",
		"password": "Str0ngPass!",
	}, nil)
	assert.Equal(t, http.StatusCreated, status)

	activationToken, ok := data(t, env)["token"].(string)
	assert.True(t, ok)

	status, _, _ = ts.put(t, "/api/users/activate", nil, map[string]any{"token": activationToken})
	assert.Equal(t, http.StatusOK, status)

	status, _, env = ts.post(t, "/api/users/login", map[string]any{
		"username": "admin42",
		"password": "Str0ngPass!",
	}, nil)
	assert.Equal(t, http.StatusOK, status)

	token, ok := data(t, env)["token"].(map[string]any)
	assert.True(t, ok)

	accessToken, ok := token["access_token"].(string)
	assert.True(t, ok)

	return accessToken
}

func (ts *testServer) post(t *testing.T, path string, payload any, token *string) (int, http.Header, envelope) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	body := bytes.NewReader(jsonPayload)
	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) put(t *testing.T, path string, token *string, payload any) (int, http.Header, envelope) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	body := bytes.NewReader(jsonPayload)
	req, err := http.NewRequest(http.MethodPut, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}
