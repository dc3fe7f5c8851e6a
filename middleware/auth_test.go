package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/repositories"
	"blog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct {
	userID uint
	err    error
}

func (f fakeTokens) Generate(uint) (string, error) { return "token", nil }

func (f fakeTokens) Verify(string) (uint, error) { return f.userID, f.err }

type fakeUsers map[uint]*models.User

func (f fakeUsers) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if id == 13 {
		return nil, errors.New("database is on fire")
	}
	user, ok := f[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", repositories.ErrNotFound, id)
	}
	return user, nil
}

func newAuthRouter(t *testing.T, tokens services.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)
	h, err := helper.NewHTTPHelper(log)
	require.NoError(t, err)

	users := fakeUsers{1: {ID: 1, Name: "Ada", Email: "ada@example.com"}}

	router := gin.New()
	router.GET("/private", AuthMiddleware(tokens, users, h), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		tokens  fakeTokens
		code    int
		message string
	}{
		{"missing header", "", fakeTokens{userID: 1}, http.StatusUnauthorized, "Authorization header missing or invalid"},
		{"wrong scheme", "Token abc", fakeTokens{userID: 1}, http.StatusUnauthorized, "Authorization header missing or invalid"},
		{"empty token", "Bearer   ", fakeTokens{userID: 1}, http.StatusUnauthorized, "Token not provided"},
		{"expired", "Bearer abc", fakeTokens{err: services.ErrTokenExpired}, http.StatusUnauthorized, "Token has expired"},
		{"invalid", "Bearer abc", fakeTokens{err: services.ErrTokenInvalid}, http.StatusUnauthorized, "Invalid token"},
		{"bad payload", "Bearer abc", fakeTokens{err: services.ErrTokenPayload}, http.StatusUnauthorized, "Invalid token payload"},
		{"other verification failure", "Bearer abc", fakeTokens{err: services.ErrTokenVerification}, http.StatusUnauthorized, "Token verification failed"},
		{"unknown user", "Bearer abc", fakeTokens{userID: 2}, http.StatusUnauthorized, "User not found"},
		{"store failure", "Bearer abc", fakeTokens{userID: 13}, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(t, tt.tokens)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.message), w.Body.String())
		})
	}
}

func TestAuthMiddlewareAttachesUser(t *testing.T) {
	router := newAuthRouter(t, fakeTokens{userID: 1})

	for _, header := range []string{"Bearer abc", "BEARER abc", "bearer abc"} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, header)
		assert.JSONEq(t, `{"id":1}`, w.Body.String())
	}
}

func TestCurrentUserWithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	user, ok := CurrentUser(c)

	assert.False(t, ok)
	assert.Nil(t, user)
}
