package helper

import (
	"errors"
	"net/http"

	"berita-api/models"
	"berita-api/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const textServerError = `Server Error`

// HTTPHelper ...
type HTTPHelper struct {
	Validator *validation.Validator
	Logger    *zap.Logger
}

func NewHTTPHelper(v *validation.Validator, logger *zap.Logger) *HTTPHelper {
	return &HTTPHelper{Validator: v, Logger: logger}
}

// GetStatusCode ...
// Map a service error to its http status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		validationErr   models.ErrorValidation
		badRequestErr   models.ErrorBadRequest
		notFoundErr     models.ErrorNotFound
		forbiddenErr    models.ErrorForbidden
		unauthorizedErr models.ErrorUnauthorized
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &badRequestErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &forbiddenErr):
		return http.StatusForbidden
	case errors.As(err, &unauthorizedErr):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// SendError ...
// Send the error returned by a service to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	var validationErr models.ErrorValidation
	if errors.As(err, &validationErr) {
		u.SendValidationError(c, validationErr.Errors)
		return
	}

	status := u.GetStatusCode(err)
	if status == http.StatusInternalServerError {
		u.SendInternalError(c, err)
		return
	}

	u.SendMessage(c, status, err.Error())
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"errors": errs,
	})
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.SendMessage(c, http.StatusUnauthorized, message)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.SendMessage(c, http.StatusNotFound, message)
}

// SendInternalError logs err and hides it from consumers.
func (u *HTTPHelper) SendInternalError(c *gin.Context, err error) {
	u.Logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	u.SendMessage(c, http.StatusInternalServerError, textServerError)
}

// SendMessage ...
// Send a {"message": ...} body.
func (u *HTTPHelper) SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
