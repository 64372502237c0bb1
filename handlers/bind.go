package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"berita-api/models"
	"berita-api/validation"

	"github.com/gin-gonic/gin"
)

var errMalformedBody = models.ErrorBadRequest{Message: "The request body is malformed."}

type trimmer interface {
	Trim()
}

// bindBody binds JSON, urlencoded or multipart bodies and trims the text
// fields. An empty body binds to the zero value so that validation reports
// the missing fields. A JSON value of the wrong type is reported against its
// field, together with whatever else fails validation.
func bindBody(c *gin.Context, v *validation.Validator, req interface{}) error {
	err := c.ShouldBind(req)
	if t, ok := req.(trimmer); ok {
		t.Trim()
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return v.Reject(req, typeErr.Field, "string")
	}
	return errMalformedBody
}
