package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAuthFlow(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	register := gin.H{
		"email": "Alice@Example.com", "password": "hunter22",
		"name": "alice", "phone": "0812345678",
	}

	t.Run("Register", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/users/register", "", register)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		data := decodeBody(t, w)["data"].(map[string]any)
		// stored lowercased
		assert.Equal(t, "alice@example.com", data["email"])
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/users/register", "", register)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email already registered", decodeBody(t, w)["message"])
	})

	var token string
	t.Run("Login", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
			"email": "alice@example.com", "password": "hunter22",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := decodeBody(t, w)["data"].(map[string]any)
		token = data["token"].(string)
		require.NotEmpty(t, token)
	})

	t.Run("WrongPasswordUnauthorized", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
			"email": "alice@example.com", "password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Me", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/users/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "alice", data["name"])
	})
}
