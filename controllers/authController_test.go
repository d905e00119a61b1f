package controllers

import (
	"net/http"
	"testing"

	"resto-api/config"
	"resto-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, username, password, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Username: username, Password: string(hashed), Role: role}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func TestLogin(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	seedUser(t, "admin", "admin123", "admin")

	w := doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	seedUser(t, "cashier1", "cashier123", "cashier")

	w := doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"username": "cashier1",
		"password": "wrong",
	})
	requireStatus(t, w, http.StatusUnauthorized)

	w = doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"username": "ghost",
		"password": "whatever",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}
