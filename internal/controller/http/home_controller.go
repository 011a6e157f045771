package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
)

// HomeController edits the services list of the home document
type HomeController struct {
	homeService    service.HomeService
	authMiddleware *middleware.AuthMiddleware
}

// NewHomeController creates a new HomeController instance
func NewHomeController(homeService service.HomeService, authMiddleware *middleware.AuthMiddleware) *HomeController {
	return &HomeController{
		homeService:    homeService,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers the home routes
func (c *HomeController) RegisterRoutes(router *gin.RouterGroup) {
	services := router.Group("/home/services")
	services.Use(c.authMiddleware.Admin()...)
	{
		services.POST("", c.AddService)
		services.PUT("/:id", c.UpdateService)
		services.DELETE("/:id", c.DeleteService)
	}
}

// AddService appends a service card with the next free id
// @Summary Add a home service
// @Tags Home
// @Security BearerAuth
// @Param request body request.ServiceRequest true "Service"
// @Success 201 {object} response.ApiResponse[content.Service]
// @Router /api/v1/home/services [post]
func (c *HomeController) AddService(ctx *gin.Context) {
	var req request.ServiceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	svc, err := c.homeService.AddService(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewSuccess(svc, "Service added successfully"))
}

// UpdateService replaces a service card
// @Summary Update a home service
// @Tags Home
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Router /api/v1/home/services/{id} [put]
func (c *HomeController) UpdateService(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	var req request.ServiceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	svc, err := c.homeService.UpdateService(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(svc, "Service updated successfully"))
}

// DeleteService removes a service card
// @Summary Delete a home service
// @Tags Home
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Router /api/v1/home/services/{id} [delete]
func (c *HomeController) DeleteService(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.homeService.DeleteService(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Service deleted successfully"))
}
