package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/jobboard/app/models"
	"github.com/hirewire/jobboard/app/services"
	"github.com/hirewire/jobboard/app/store"
)

// In-memory stores backing the handler tests. They honor the same
// contracts as the SQL stores: unique emails, generated ids, owner
// scoping, and sql.ErrNoRows for misses.

type memUsersStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUsersStore() *memUsersStore {
	return &memUsersStore{users: make(map[string]*models.User)}
}

func (s *memUsersStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memUsersStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (s *memUsersStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

type memJobsStore struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newMemJobsStore() *memJobsStore {
	return &memJobsStore{jobs: make(map[string]*models.Job)}
}

func (s *memJobsStore) visible(job *models.Job, ownerID string) bool {
	return ownerID == "" || job.OwnerUserID == ownerID
}

func (s *memJobsStore) GetAll(ctx context.Context, ownerID string) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Job
	for _, j := range s.jobs {
		if s.visible(j, ownerID) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (s *memJobsStore) GetByID(ctx context.Context, id, ownerID string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok && s.visible(j, ownerID) {
		clone := *j
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (s *memJobsStore) Create(ctx context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	clone := *job
	s.jobs[job.ID] = &clone
	return nil
}

func (s *memJobsStore) Update(ctx context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[job.ID]; !ok {
		return sql.ErrNoRows
	}
	job.UpdatedAt = time.Now()
	clone := *job
	s.jobs[job.ID] = &clone
	return nil
}

func (s *memJobsStore) Delete(ctx context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok && s.visible(j, ownerID) {
		delete(s.jobs, id)
		return nil
	}
	return sql.ErrNoRows
}

type testApp struct {
	app     *application
	handler http.Handler
	users   *memUsersStore
	jobs    *memJobsStore
	tokens  *services.TokenManager
}

func newTestApp(t *testing.T, authRequired bool) *testApp {
	t.Helper()

	users := newMemUsersStore()
	jobs := newMemJobsStore()
	storage := store.Storage{Users: users, Jobs: jobs}
	tokens := services.NewTokenManager([]byte("test-secret"), time.Hour)

	app := &application{
		config:      config{addr: ":0", authRequired: authRequired},
		store:       storage,
		authService: services.NewAuthService(storage, services.NewBcryptHasher(), tokens),
	}

	return &testApp{
		app:     app,
		handler: app.mount(),
		users:   users,
		jobs:    jobs,
		tokens:  tokens,
	}
}

func (ta *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ta.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out),
		"status %d body %s", rec.Code, rec.Body.String())
}

// signupUser registers a user through the API and returns its token.
func (ta *testApp) signupUser(t *testing.T, email string) string {
	t.Helper()

	rec := ta.do(t, http.MethodPost, "/api/users/signup", "", map[string]string{
		"name":     "Test User " + strconv.Itoa(len(ta.users.users)),
		"email":    email,
		"password": "R3g5T7#gh",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
