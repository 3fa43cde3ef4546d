package web

import (
	"net/http"

	"github.com/vibe-gaming/tourism/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCitiesRoutes(states *gin.RouterGroup) {
	states.GET("/:id/cities", h.listCities)
	states.GET("/:id/cities/new", h.newCity)
	states.POST("/:id/cities", h.createCity)
}

type cityForm struct {
	Name string `form:"Name" binding:"required,notblank,max=255"`
}

// GET /states/:id/cities
func (h *Handler) listCities(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}

	state, err := h.services.Cities.List(c.Request.Context(), id)
	if err != nil {
		handleError(c, "list cities failed", err)
		return
	}

	c.HTML(http.StatusOK, "cities/index", gin.H{
		"State": state,
	})
}

// GET /states/:id/cities/new
func (h *Handler) newCity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}

	state, err := h.services.States.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, "get state failed", err)
		return
	}

	c.HTML(http.StatusOK, "cities/new", gin.H{
		"State": state,
		"Form":  cityForm{},
	})
}

// POST /states/:id/cities
func (h *Handler) createCity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}

	ctx := c.Request.Context()
	state, err := h.services.States.Get(ctx, id)
	if err != nil {
		handleError(c, "get state failed", err)
		return
	}

	var form cityForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "cities/new", gin.H{
			"State":  state,
			"Form":   form,
			"Errors": formErrors(err),
		})
		return
	}

	if err := h.services.Cities.Create(ctx, id, &domain.City{Name: form.Name}); err != nil {
		handleError(c, "create city failed", err)
		return
	}

	c.Redirect(http.StatusSeeOther, stateURL(id)+"/cities")
}
