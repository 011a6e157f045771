package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ContactController handles the public contact form and its admin inbox
type ContactController struct {
	contactService service.ContactService
	authMiddleware *middleware.AuthMiddleware
}

// NewContactController creates a new ContactController instance
func NewContactController(contactService service.ContactService, authMiddleware *middleware.AuthMiddleware) *ContactController {
	return &ContactController{
		contactService: contactService,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers the contact routes. Submissions carry personal
// data so only the form post is public.
func (c *ContactController) RegisterRoutes(router *gin.RouterGroup) {
	contacts := router.Group("/contacts")
	admin := c.authMiddleware.Admin()
	{
		contacts.POST("", c.Submit)
		contacts.GET("", append(admin, c.List)...)
		contacts.GET("/export.xlsx", append(admin, c.Export)...)
		contacts.DELETE("/:id", append(admin, c.Delete)...)
	}
}

// Submit stores a contact form submission
// @Summary Submit the contact form
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body request.ContactRequest true "Submission"
// @Success 201 {object} response.ApiResponse[content.Contact]
// @Router /api/v1/contacts [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req request.ContactRequest
	if !bindJSON(ctx, &req) {
		return
	}

	contact, err := c.contactService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewSuccess(contact, "Thank you, we will get back to you soon"))
}

// List returns submissions matching q over name, email, subject and message
// @Summary List contact submissions
// @Tags Contacts
// @Security BearerAuth
// @Param q query string false "Search term"
// @Router /api/v1/contacts [get]
func (c *ContactController) List(ctx *gin.Context) {
	contacts, err := c.contactService.List(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(response.NewListResponse(contacts)))
}

// Delete removes a submission
// @Summary Delete a contact submission
// @Tags Contacts
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Router /api/v1/contacts/{id} [delete]
func (c *ContactController) Delete(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.contactService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Contact deleted successfully"))
}

// Export downloads the matching submissions as a spreadsheet
// @Summary Export contact submissions
// @Tags Contacts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param q query string false "Search term"
// @Router /api/v1/contacts/export.xlsx [get]
func (c *ContactController) Export(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.contactService.Export(ctx.Request.Context(), &buf, ctx.Query("q")); err != nil {
		respondError(ctx, err)
		return
	}

	filename := fmt.Sprintf("contacts-%s.xlsx", time.Now().UTC().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
