package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/feature/auth/domain/entity"
	authusecase "jobboard_backend/internal/feature/auth/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	registerFn func(ctx context.Context, name, email, password string) (*entity.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (*entity.User, string, error)
	updateFn   func(ctx context.Context, userID uint, name, lastName, email, location string) (*entity.User, string, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, name, email, password)
	}
	return &entity.User{Name: name, Email: email, Location: entity.DefaultLocation}, "tok", nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return nil, "", authusecase.ErrInvalidCredentials
}

func (m *mockAuthUsecase) UpdateProfile(ctx context.Context, userID uint, name, lastName, email, location string) (*entity.User, string, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, name, lastName, email, location)
	}
	return &entity.User{ID: userID, Name: name, LastName: lastName, Email: email, Location: location}, "fresh", nil
}

func postJSON(t *testing.T, router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		registerFn     func(ctx context.Context, name, email, password string) (*entity.User, string, error)
		expectedStatus int
	}{
		{
			name:           "success",
			requestBody:    gin.H{"name": "Alice", "email": "alice@example.com", "password": "password123"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			requestBody:    gin.H{"email": "alice@example.com", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email",
			requestBody:    gin.H{"name": "Alice", "email": "not-an-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			requestBody:    gin.H{"name": "Alice", "email": "alice@example.com", "password": "abc"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate email",
			requestBody: gin.H{"name": "Alice", "email": "alice@example.com", "password": "password123"},
			registerFn: func(ctx context.Context, name, email, password string) (*entity.User, string, error) {
				return nil, "", authusecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{registerFn: tt.registerFn})
			router := gin.New()
			router.POST("/register", h.Register)

			w := postJSON(t, router, "/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code, "body: %s", w.Body.String())
		})
	}
}

func TestAuthHandler_Register_ResponseShape(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{})
	router := gin.New()
	router.POST("/register", h.Register)

	w := postJSON(t, router, "/register", gin.H{"name": "Alice", "email": "alice@example.com", "password": "password123"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "user")
	assert.Contains(t, resp, "token")
	assert.NotContains(t, w.Body.String(), "password", "password must never be serialized")
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		loginFn        func(ctx context.Context, email, password string) (*entity.User, string, error)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: gin.H{"email": "alice@example.com", "password": "password123"},
			loginFn: func(ctx context.Context, email, password string) (*entity.User, string, error) {
				return &entity.User{ID: 1, Email: email}, "tok", nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad credentials are generic",
			requestBody:    gin.H{"email": "alice@example.com", "password": "wrong"},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid email or password",
		},
		{
			name:           "missing password",
			requestBody:    gin.H{"email": "alice@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{loginFn: tt.loginFn})
			router := gin.New()
			router.POST("/login", h.Login)

			w := postJSON(t, router, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code, "body: %s", w.Body.String())
			if tt.expectedMsg != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMsg, resp["message"])
			}
		})
	}
}

func TestAuthHandler_UpdateUser(t *testing.T) {
	newRouter := func(h *AuthHandler, authenticated bool) *gin.Engine {
		router := gin.New()
		router.PUT("/update-user", func(c *gin.Context) {
			if authenticated {
				c.Set(jwtmw.ContextUserID, uint(1))
			}
			h.UpdateUser(c)
		})
		return router
	}

	t.Run("success", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})
		router := newRouter(h, true)

		b, _ := json.Marshal(gin.H{"name": "Alicia", "email": "alicia@example.com", "lastName": "Doe", "location": "Pune"})
		req := httptest.NewRequest(http.MethodPut, "/update-user", bytes.NewBuffer(b))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		var resp struct {
			User  map[string]string `json:"user"`
			Token string            `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "fresh", resp.Token, "token must be refreshed")
		assert.Equal(t, "Alicia", resp.User["name"])
	})

	t.Run("missing field", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})
		router := newRouter(h, true)

		b, _ := json.Marshal(gin.H{"name": "Alicia", "email": "alicia@example.com"})
		req := httptest.NewRequest(http.MethodPut, "/update-user", bytes.NewBuffer(b))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})
		router := newRouter(h, false)

		b, _ := json.Marshal(gin.H{"name": "Alicia", "email": "alicia@example.com", "lastName": "Doe", "location": "Pune"})
		req := httptest.NewRequest(http.MethodPut, "/update-user", bytes.NewBuffer(b))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
