// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/recipe-keeper/internal/crypto"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memStore is an in-memory implementation of the store repositories.
// It backs the end-to-end tests with real service wiring and no database.
type memStore struct {
	mu sync.Mutex

	users    map[int64]models.User
	sessions map[string]models.Session
	recipes  map[int64]models.Recipe

	nextUserID   int64
	nextRecipeID int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]models.User),
		sessions: make(map[string]models.Session),
		recipes:  make(map[int64]models.Recipe),
	}
}

func (m *memStore) CreateUser(_ context.Context, user models.User, sessionToken string) (models.User, models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return models.User{}, models.Session{}, store.ErrUsernameTaken
		}
	}

	m.nextUserID++
	user.UserID = m.nextUserID
	m.users[user.UserID] = user

	session := models.Session{Token: sessionToken, UserID: user.UserID}
	m.sessions[sessionToken] = session

	return user, session, nil
}

func (m *memStore) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memStore) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (m *memStore) CreateSession(_ context.Context, token string, userID int64) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := models.Session{Token: token, UserID: userID}
	m.sessions[token] = session
	return session, nil
}

func (m *memStore) FindSessionByToken(_ context.Context, token string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[token]
	if !ok {
		return models.Session{}, store.ErrNoSessionWasFound
	}
	return session, nil
}

func (m *memStore) RevokeSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[token]; !ok {
		return store.ErrNoSessionWasFound
	}
	delete(m.sessions, token)
	return nil
}

func (m *memStore) GetAllRecipes(_ context.Context, userID int64) ([]models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := make([]models.Recipe, 0)
	for _, recipe := range m.recipes {
		if recipe.UserID == userID {
			owned = append(owned, recipe)
		}
	}
	return owned, nil
}

func (m *memStore) CreateRecipe(_ context.Context, recipe models.Recipe) (models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextRecipeID++
	recipe.RecipeID = m.nextRecipeID
	m.recipes[recipe.RecipeID] = recipe
	return recipe, nil
}

// startTestServer wires real services over the in-memory store and starts
// an httptest server with the full router and middleware chain.
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mem := newMemStore()
	svcs := &service.Services{
		AuthService:   service.NewAuthService(mem, mem, crypto.NewPasswordHasher(bcrypt.MinCost), logger.Nop()),
		RecipeService: service.NewRecipeService(mem, logger.Nop()),
	}

	h := NewHandler(svcs, testCookieName, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv
}

// TestFullSessionLifecycle walks a single client through the whole API:
// signup, failed login, login, recipe creation, listing, logout, and the
// rejection that follows logout. The resty client's cookie jar carries the
// session cookie between calls the way a browser would.
func TestFullSessionLifecycle(t *testing.T) {
	srv := startTestServer(t)
	client := utils.NewHTTPClient()
	client.SetBaseURL(srv.URL)

	// signup starts a session
	resp, err := client.R().
		SetBody(models.CredentialsRequest{Username: "alice", Password: "pw123"}).
		Post("/signup")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())

	// a second signup with the same username is rejected
	resp, err = client.R().
		SetBody(models.CredentialsRequest{Username: "alice", Password: "other"}).
		Post("/signup")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())

	// wrong password
	resp, err = client.R().
		SetBody(models.CredentialsRequest{Username: "alice", Password: "wrong"}).
		Post("/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	// correct password
	resp, err = client.R().
		SetBody(models.CredentialsRequest{Username: "alice", Password: "pw123"}).
		Post("/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	// session is live
	var profile models.ProfileResponse
	resp, err = client.R().SetResult(&profile).Get("/check_session")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "alice", profile.Username)

	// create a recipe
	resp, err = client.R().
		SetBody(map[string]any{"title": "Soup", "instructions": "Boil water", "minutes_to_complete": 20}).
		Post("/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())

	// exactly one recipe comes back, matching what was submitted
	var recipes []models.Recipe
	resp, err = client.R().SetResult(&recipes).Get("/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, recipes, 1)
	assert.Equal(t, "Soup", recipes[0].Title)
	assert.Equal(t, "Boil water", recipes[0].Instructions)
	assert.Equal(t, 20, recipes[0].MinutesToComplete)

	// logout ends the session
	resp, err = client.R().Post("/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	// the old session no longer grants access
	resp, err = client.R().Get("/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	resp, err = client.R().Get("/check_session")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

// TestOwnerIsolation verifies that two authenticated clients never see each
// other's recipes.
func TestOwnerIsolation(t *testing.T) {
	srv := startTestServer(t)

	alice := utils.NewHTTPClient()
	alice.SetBaseURL(srv.URL)
	bob := utils.NewHTTPClient()
	bob.SetBaseURL(srv.URL)

	signups := []struct {
		client   *utils.HTTPClient
		username string
	}{
		{client: alice, username: "alice"},
		{client: bob, username: "bob"},
	}
	for _, s := range signups {
		resp, err := s.client.R().
			SetBody(models.CredentialsRequest{Username: s.username, Password: "pw123"}).
			Post("/signup")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode())
	}

	resp, err := alice.R().
		SetBody(map[string]any{"title": "Soup", "instructions": "Boil water", "minutes_to_complete": 20}).
		Post("/recipes")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	var bobRecipes []models.Recipe
	resp, err = bob.R().SetResult(&bobRecipes).Get("/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Empty(t, bobRecipes)

	var aliceRecipes []models.Recipe
	resp, err = alice.R().SetResult(&aliceRecipes).Get("/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Len(t, aliceRecipes, 1)
}

// TestAnonymousAccessIsRejected verifies every gated route turns away a
// client with no session cookie.
func TestAnonymousAccessIsRejected(t *testing.T) {
	srv := startTestServer(t)
	client := utils.NewHTTPClient()
	client.SetBaseURL(srv.URL)

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/logout"},
		{method: http.MethodGet, path: "/check_session"},
		{method: http.MethodGet, path: "/recipes"},
		{method: http.MethodPost, path: "/recipes"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := client.R().Execute(tt.method, tt.path)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
		})
	}
}
