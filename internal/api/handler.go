package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/dto"
	"smarthome-backend/internal/service"
)

const (
	basePath       = "/api"
	halContentType = "application/hal+json"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	svc *service.Services
}

// NewHandler creates a new API handler.
func NewHandler(svc *service.Services) *Handler {
	return &Handler{svc: svc}
}

// errEmptyBody is reported when a request carries no body or a JSON null.
var errEmptyBody = errors.New("request body is required")

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// abortWithError maps err onto the status contract: lookups that find
// nothing are 404, validation failures 422, and anything else 400.
func abortWithError(c *gin.Context, err error) {
	status, code := http.StatusBadRequest, "bad_request"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrValidation):
		status, code = http.StatusUnprocessableEntity, "validation_failed"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Status: status, Code: code, Message: err.Error()})
}

// bindBody decodes the JSON body into obj. A missing, null or malformed body
// is answered with 400 and false is returned.
func bindBody(c *gin.Context, obj any) bool {
	raw, err := c.GetRawData()
	if err == nil {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			err = errEmptyBody
		} else {
			err = binding.JSON.BindBody(trimmed, obj)
		}
	}
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Code:    "invalid_body",
			Message: err.Error(),
		})
		return false
	}
	return true
}

// pathID parses the named path parameter as an identity. A blank value is
// answered with 422.
func pathID[T ~string](c *gin.Context, name string) (T, bool) {
	id, err := domain.ParseID[T](c.Param(name))
	if err != nil {
		abortWithError(c, err)
		return "", false
	}
	return id, true
}

func href(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return basePath + "/" + strings.Join(escaped, "/")
}

func respondCreated(c *gin.Context, location string, body any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}

// respondCollection writes items as a HAL collection, or 404 when there are none.
func respondCollection[T any](c *gin.Context, name string, items []T) {
	if len(items) == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{
			Status:  http.StatusNotFound,
			Code:    "not_found",
			Message: "no " + name + " found",
		})
		return
	}
	c.Header("Content-Type", halContentType)
	c.JSON(http.StatusOK, dto.NewCollection(name, items, c.Request.URL.RequestURI()))
}
