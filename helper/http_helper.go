package helper

import (
	"errors"
	"net/http"

	"blog-api/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-playground/validator.v9"
)

const (
	textNotFound    = `Not found`
	textServerError = `Server error`
	textInvalidID   = `Invalid id`
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Log        *logrus.Logger
}

// NewHTTPHelper builds a helper with the request validator and its English
// translations.
func NewHTTPHelper(log *logrus.Logger) (*HTTPHelper, error) {
	validate, trans, err := NewValidator()
	if err != nil {
		return nil, err
	}
	return &HTTPHelper{Validate: validate, Translator: trans, Log: log}, nil
}

// GetStatusCode ...
// Maps an error returned by a service to the HTTP status sent to the client.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		badRequest   models.ErrorBadRequest
		unauthorized models.ErrorUnauthorized
		notFound     models.ErrorNotFound
		conflict     models.ErrorConflict
	)

	switch {
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		// Duplicate names are reported as a plain bad request by this API.
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SendError ...
// Send an error message to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// SendValidationError ...
// Send every field violation to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, code int, fieldErrors FieldErrors) {
	c.AbortWithStatusJSON(code, gin.H{"errors": fieldErrors})
}

// SendSuccess ...
func (u *HTTPHelper) SendSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// SendNotFound answers requests that matched no route.
func (u *HTTPHelper) SendNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": textNotFound})
}

// SendServerError answers with a generic 500. Details stay in the log.
func (u *HTTPHelper) SendServerError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": textServerError})
}

// SendServiceError writes err as a response: typed API errors with their own
// status and message, anything else as a generic 500.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	code := u.GetStatusCode(err)
	if code == http.StatusInternalServerError {
		u.Log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(err).Error("Unhandled error")
		u.SendServerError(c)
		return
	}
	u.SendError(c, code, err.Error())
}

// ParseID reads a positive integer path parameter. It answers 400 and
// returns false otherwise.
func (u *HTTPHelper) ParseID(c *gin.Context, param string) (uint, bool) {
	id, ok := models.ParseID(c.Param(param))
	if !ok {
		u.SendError(c, http.StatusBadRequest, textInvalidID)
		return 0, false
	}
	return id, true
}
