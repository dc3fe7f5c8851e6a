package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-api/helper"
	"blog-api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)
	h, err := helper.NewHTTPHelper(log)
	require.NoError(t, err)

	router := gin.New()
	router.Use(RequestLogger(log), Recovery(h), CORS(), ErrorHandler(h))
	router.GET("/conflict", func(c *gin.Context) {
		_ = c.Error(models.ErrorConflict{Message: "Tag already exists"})
	})
	router.GET("/internal", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: relation \"tags\" does not exist"))
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})
	router.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
		_ = c.Error(errors.New("logged only"))
	})
	return router
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestErrorHandler(t *testing.T) {
	router := newErrorRouter(t)

	w := serve(router, http.MethodGet, "/conflict")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Tag already exists"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/internal")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/written")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	w := serve(newErrorRouter(t), http.MethodGet, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := newErrorRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/conflict", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = serve(router, http.MethodGet, "/conflict")
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestCORSPreflight(t *testing.T) {
	w := serve(newErrorRouter(t), http.MethodOptions, "/conflict")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
