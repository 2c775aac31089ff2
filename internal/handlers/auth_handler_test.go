package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kisanlink/agrostock-backend/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestAuthRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	// Register
	resp, raw := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email": "owner@example.com", "password": "secret123", "user_type": "B2C",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var reg dto.AuthResponse
	assert.NoError(t, json.Unmarshal(raw, &reg))
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "owner@example.com", reg.User.Email)
	assert.NotContains(t, string(raw), "password")

	// Duplicate register
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email": "owner@example.com", "password": "other", "user_type": "B2B",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Login
	resp, raw = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "owner@example.com", "password": "secret123",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var login dto.AuthResponse
	assert.NoError(t, json.Unmarshal(raw, &login))
	assert.Equal(t, reg.User.ID, login.User.ID)

	// Bad credentials
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "owner@example.com", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Missing input
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "owner@example.com",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// /me with the issued token
	resp, raw = doJSON(t, app, http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + login.Token,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var me dto.UserResponse
	assert.NoError(t, json.Unmarshal(raw, &me))
	assert.Equal(t, reg.User.ID, me.ID)
	assert.Equal(t, "B2C", me.UserType)

	// /me without a token
	resp, _ = doJSON(t, app, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/users", map[string]interface{}{
		"email": "dealer@example.com", "user_type": "B2B", "shop_name": "Agro Traders",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.UserResponse
	assert.NoError(t, json.Unmarshal(raw, &created))

	resp, raw = doJSON(t, app, http.MethodGet, "/api/users/"+created.ID.String(), nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(raw), "password")

	resp, _ = doJSON(t, app, http.MethodGet, "/api/users/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/users/00000000-0000-0000-0000-000000000001", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/users?user_type=B2B", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []dto.UserResponse
	assert.NoError(t, json.Unmarshal(raw, &listed))
	assert.Len(t, listed, 1)
}
