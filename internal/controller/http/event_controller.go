package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
)

// EventController handles webinar and manthan endpoints
type EventController struct {
	eventService   service.EventService
	authMiddleware *middleware.AuthMiddleware
}

// NewEventController creates a new EventController instance
func NewEventController(eventService service.EventService, authMiddleware *middleware.AuthMiddleware) *EventController {
	return &EventController{
		eventService:   eventService,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers the event routes
func (c *EventController) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events")
	admin := c.authMiddleware.Admin()
	{
		events.GET("", c.List)
		events.GET("/:id", c.GetByID)
		events.POST("", append(admin, c.Create)...)
		events.PUT("/:id", append(admin, c.Update)...)
		events.DELETE("/:id", append(admin, c.Delete)...)
	}
}

// List returns events ordered by date
// @Summary List events
// @Tags Events
// @Param kind query string false "webinar or manthan"
// @Success 200 {object} response.ApiResponse[response.ListResponse[content.Event]]
// @Router /api/v1/events [get]
func (c *EventController) List(ctx *gin.Context) {
	events, err := c.eventService.List(ctx.Request.Context(), ctx.Query("kind"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(response.NewListResponse(events)))
}

// GetByID returns one event
// @Summary Get an event
// @Tags Events
// @Param id path string true "Event ID"
// @Router /api/v1/events/{id} [get]
func (c *EventController) GetByID(ctx *gin.Context) {
	event, err := c.eventService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(event))
}

// Create schedules a new event
// @Summary Create an event
// @Tags Events
// @Security BearerAuth
// @Param request body request.EventRequest true "Event"
// @Router /api/v1/events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req request.EventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewSuccess(event, "Event created successfully"))
}

// Update replaces an event
// @Summary Update an event
// @Tags Events
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Router /api/v1/events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	var req request.EventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(event, "Event updated successfully"))
}

// Delete removes an event
// @Summary Delete an event
// @Tags Events
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Router /api/v1/events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	if err := c.eventService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Event deleted successfully"))
}
