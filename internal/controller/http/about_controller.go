package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
)

// AboutController edits the sub-collections of the about document
type AboutController struct {
	aboutService   service.AboutService
	authMiddleware *middleware.AuthMiddleware
}

// NewAboutController creates a new AboutController instance
func NewAboutController(aboutService service.AboutService, authMiddleware *middleware.AuthMiddleware) *AboutController {
	return &AboutController{
		aboutService:   aboutService,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers the about routes. Every route is an admin write.
func (c *AboutController) RegisterRoutes(router *gin.RouterGroup) {
	about := router.Group("/about")
	about.Use(c.authMiddleware.Admin()...)
	{
		about.POST("/core-committee-members", c.AddMember)
		about.PUT("/core-committee-members/:id", c.UpdateMember)
		about.DELETE("/core-committee-members/:id", c.DeleteMember)

		about.POST("/payment-sections", c.AddPaymentSection)
		about.PUT("/payment-sections/:id", c.UpdatePaymentSection)
		about.DELETE("/payment-sections/:id", c.DeletePaymentSection)
		about.POST("/payment-sections/:id/move", c.MovePaymentSection)

		about.POST("/what-we-do-items", c.AddWhatWeDoItem)
		about.PUT("/what-we-do-items/:index", c.UpdateWhatWeDoItem)
		about.DELETE("/what-we-do-items/:index", c.DeleteWhatWeDoItem)
	}
}

// AddMember adds a core committee member
// @Summary Add a core committee member
// @Tags About
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.MemberRequest true "Member"
// @Success 201 {object} response.ApiResponse[content.Member]
// @Router /api/v1/about/core-committee-members [post]
func (c *AboutController) AddMember(ctx *gin.Context) {
	var req request.MemberRequest
	if !bindJSON(ctx, &req) {
		return
	}

	member, err := c.aboutService.AddMember(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewSuccess(member, "Member added successfully"))
}

// UpdateMember replaces a core committee member
// @Summary Update a core committee member
// @Tags About
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Router /api/v1/about/core-committee-members/{id} [put]
func (c *AboutController) UpdateMember(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	var req request.MemberRequest
	if !bindJSON(ctx, &req) {
		return
	}

	member, err := c.aboutService.UpdateMember(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(member, "Member updated successfully"))
}

// DeleteMember removes a core committee member
// @Summary Delete a core committee member
// @Tags About
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Router /api/v1/about/core-committee-members/{id} [delete]
func (c *AboutController) DeleteMember(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.aboutService.DeleteMember(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Member deleted successfully"))
}

// AddPaymentSection appends a payment policy section
// @Summary Add a payment policy section
// @Tags About
// @Security BearerAuth
// @Param request body request.PolicySectionRequest true "Section"
// @Router /api/v1/about/payment-sections [post]
func (c *AboutController) AddPaymentSection(ctx *gin.Context) {
	var req request.PolicySectionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	section, err := c.aboutService.AddPaymentSection(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewSuccess(section, "Section added successfully"))
}

// UpdatePaymentSection replaces a payment policy section
// @Summary Update a payment policy section
// @Tags About
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Router /api/v1/about/payment-sections/{id} [put]
func (c *AboutController) UpdatePaymentSection(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	var req request.PolicySectionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	section, err := c.aboutService.UpdatePaymentSection(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(section, "Section updated successfully"))
}

// DeletePaymentSection removes a payment policy section
// @Summary Delete a payment policy section
// @Tags About
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Router /api/v1/about/payment-sections/{id} [delete]
func (c *AboutController) DeletePaymentSection(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.aboutService.DeletePaymentSection(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Section deleted successfully"))
}

// MovePaymentSection swaps a section with its neighbour and returns the new order
// @Summary Move a payment policy section up or down
// @Tags About
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Param request body request.MoveRequest true "Direction"
// @Router /api/v1/about/payment-sections/{id}/move [post]
func (c *AboutController) MovePaymentSection(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	var req request.MoveRequest
	if !bindJSON(ctx, &req) {
		return
	}

	sections, err := c.aboutService.MovePaymentSection(ctx.Request.Context(), id, req.Direction)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(sections, "Section moved successfully"))
}

// AddWhatWeDoItem appends a "What We Do" line
// @Summary Add a what-we-do item
// @Tags About
// @Security BearerAuth
// @Param request body request.TextItemRequest true "Item"
// @Router /api/v1/about/what-we-do-items [post]
func (c *AboutController) AddWhatWeDoItem(ctx *gin.Context) {
	var req request.TextItemRequest
	if !bindJSON(ctx, &req) {
		return
	}

	items, err := c.aboutService.AddWhatWeDoItem(ctx.Request.Context(), req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewSuccess(items, "Item added successfully"))
}

// UpdateWhatWeDoItem replaces the line at index
// @Summary Update a what-we-do item
// @Tags About
// @Security BearerAuth
// @Param index path int true "Item index"
// @Router /api/v1/about/what-we-do-items/{index} [put]
func (c *AboutController) UpdateWhatWeDoItem(ctx *gin.Context) {
	index, ok := intParam(ctx, "index")
	if !ok {
		return
	}
	var req request.TextItemRequest
	if !bindJSON(ctx, &req) {
		return
	}

	items, err := c.aboutService.UpdateWhatWeDoItem(ctx.Request.Context(), index, req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(items, "Item updated successfully"))
}

// DeleteWhatWeDoItem removes the line at index
// @Summary Delete a what-we-do item
// @Tags About
// @Security BearerAuth
// @Param index path int true "Item index"
// @Router /api/v1/about/what-we-do-items/{index} [delete]
func (c *AboutController) DeleteWhatWeDoItem(ctx *gin.Context) {
	index, ok := intParam(ctx, "index")
	if !ok {
		return
	}

	items, err := c.aboutService.DeleteWhatWeDoItem(ctx.Request.Context(), index)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(items, "Item deleted successfully"))
}
