package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vibe-gaming/tourism/internal/service"
	"github.com/vibe-gaming/tourism/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(router gin.IRouter) {
	states := router.Group("/states")

	h.initStatesRoutes(states)
	h.initCitiesRoutes(states)
}

// pathID reads the :id segment. Anything that is not a positive integer
// cannot name a row, so the caller answers 404.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "errors/not_found", gin.H{
		"Message": "State not found",
	})
}

func internalError(c *gin.Context, msg string, err error) {
	logger.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.HTML(http.StatusInternalServerError, "errors/internal", nil)
}

// handleError answers a failed service call.
func handleError(c *gin.Context, msg string, err error) {
	if errors.Is(err, service.ErrStateNotFound) {
		notFound(c)
		return
	}
	internalError(c, msg, err)
}

// formErrors maps field names to the message shown next to the input.
func formErrors(err error) map[string]string {
	out := make(map[string]string)

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		for _, ferr := range verr {
			out[ferr.Field()] = msgForTag(ferr.Field(), ferr.Tag(), ferr.Param())
		}
		return out
	}

	out["Form"] = "The form could not be read"
	return out
}

func msgForTag(field string, tag string, value string) string {
	switch tag {
	case "required", "notblank":
		return field + " is required"
	case "max":
		return field + " must be at most " + value + " characters"
	}
	return field + " is invalid"
}
