package web

import (
	"net/http"
	"strconv"

	"github.com/vibe-gaming/tourism/internal/domain"
	"github.com/vibe-gaming/tourism/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initStatesRoutes(states *gin.RouterGroup) {
	states.GET("", h.listStates)
	states.POST("", h.createState)
	states.GET("/new", h.newState)
	states.GET("/:id", h.showState)
	states.POST("/:id", h.updateState)
	states.GET("/:id/edit", h.editState)
	states.POST("/delete/:id", h.deleteState)
}

type stateForm struct {
	Name         string `form:"Name" binding:"required,notblank,max=255"`
	Abbreviation string `form:"Abbreviation" binding:"required,notblank,max=255"`
	TimeZone     string `form:"TimeZone" binding:"max=255"`
}

func newStateForm(state *domain.State) stateForm {
	return stateForm{
		Name:         state.Name,
		Abbreviation: state.Abbreviation,
		TimeZone:     state.TimeZone,
	}
}

func (f stateForm) toDomain(id int64) *domain.State {
	return &domain.State{
		ID:           id,
		Name:         f.Name,
		Abbreviation: f.Abbreviation,
		TimeZone:     f.TimeZone,
	}
}

func stateURL(id int64) string {
	return "/states/" + strconv.FormatInt(id, 10)
}

// GET /states?time_zone=
func (h *Handler) listStates(c *gin.Context) {
	list, err := h.services.States.List(c.Request.Context(), c.Query("time_zone"))
	if err != nil {
		internalError(c, "list states failed", err)
		return
	}

	c.HTML(http.StatusOK, "states/index", gin.H{
		"States":    list.States,
		"TimeZones": list.TimeZones,
		"TimeZone":  list.TimeZone,
	})
}

// GET /states/:id
func (h *Handler) showState(c *gin.Context) {
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

	c.HTML(http.StatusOK, "states/show", gin.H{
		"State": state,
	})
}

// GET /states/new
func (h *Handler) newState(c *gin.Context) {
	c.HTML(http.StatusOK, "states/new", gin.H{
		"Form": stateForm{},
	})
}

// POST /states
func (h *Handler) createState(c *gin.Context) {
	var form stateForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "states/new", gin.H{
			"Form":   form,
			"Errors": formErrors(err),
		})
		return
	}

	state := form.toDomain(0)
	if err := h.services.States.Create(c.Request.Context(), state); err != nil {
		internalError(c, "create state failed", err)
		return
	}
	logger.Info("state created", zap.Int64("id", state.ID), zap.String("name", state.Name))

	c.Redirect(http.StatusSeeOther, "/states")
}

// GET /states/:id/edit
func (h *Handler) editState(c *gin.Context) {
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

	c.HTML(http.StatusOK, "states/edit", gin.H{
		"ID":   state.ID,
		"Form": newStateForm(state),
	})
}

// POST /states/:id
func (h *Handler) updateState(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.services.States.Get(ctx, id); err != nil {
		handleError(c, "get state failed", err)
		return
	}

	var form stateForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "states/edit", gin.H{
			"ID":     id,
			"Form":   form,
			"Errors": formErrors(err),
		})
		return
	}

	if err := h.services.States.Update(ctx, form.toDomain(id)); err != nil {
		handleError(c, "update state failed", err)
		return
	}

	c.Redirect(http.StatusSeeOther, stateURL(id))
}

// POST /states/delete/:id
func (h *Handler) deleteState(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}

	if err := h.services.States.Delete(c.Request.Context(), id); err != nil {
		handleError(c, "delete state failed", err)
		return
	}
	logger.Info("state deleted", zap.Int64("id", id))

	c.Redirect(http.StatusSeeOther, "/states")
}
