package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
)

const defaultMaxBodyBytes = 1 << 20

// ContentController serves the singleton content documents
type ContentController struct {
	contentService service.ContentService
	authMiddleware *middleware.AuthMiddleware
	maxBodyBytes   int64
}

// NewContentController creates a new ContentController instance
func NewContentController(contentService service.ContentService, authMiddleware *middleware.AuthMiddleware, maxBodyBytes int64) *ContentController {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &ContentController{
		contentService: contentService,
		authMiddleware: authMiddleware,
		maxBodyBytes:   maxBodyBytes,
	}
}

// RegisterRoutes registers the content routes
func (c *ContentController) RegisterRoutes(router *gin.RouterGroup) {
	docs := router.Group("/content")
	admin := c.authMiddleware.Admin()
	{
		docs.GET("", c.List)
		docs.GET("/:domain", c.Get)
		docs.PUT("/:domain", append(admin, c.Replace)...)
		docs.GET("/:domain/:section", c.GetSection)
		docs.PUT("/:domain/:section", append(admin, c.ReplaceSection)...)
	}
}

// List describes every content document
// @Summary List content documents with their versions
// @Tags Content
// @Produce json
// @Success 200 {object} response.ApiResponse[[]response.DocumentSummary]
// @Router /api/v1/content [get]
func (c *ContentController) List(ctx *gin.Context) {
	docs, err := c.contentService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	summaries := make([]response.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		d, _ := content.Lookup(doc.Domain)
		summaries = append(summaries, response.DocumentSummary{
			Domain:     doc.Domain,
			StorageKey: d.StorageKey,
			Version:    doc.Version,
			Sections:   d.Sections,
			UpdatedAt:  doc.UpdatedAt,
		})
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(summaries))
}

// Get returns a whole document, or its default when nothing was saved yet
// @Summary Get a content document
// @Tags Content
// @Produce json
// @Param domain path string true "navbar, footer, home, about or courses"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/content/{domain} [get]
func (c *ContentController) Get(ctx *gin.Context) {
	doc, err := c.contentService.Get(ctx.Request.Context(), ctx.Param("domain"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	writeDocument(ctx, http.StatusOK, doc, "")
}

// Replace stores a whole document
// @Summary Replace a content document
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param domain path string true "Content domain"
// @Param If-Match header string false "Expected document version"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Failure 422 {object} response.ApiResponse[any]
// @Router /api/v1/content/{domain} [put]
func (c *ContentController) Replace(ctx *gin.Context) {
	ifMatch, body, ok := c.readWrite(ctx)
	if !ok {
		return
	}

	doc, err := c.contentService.Replace(ctx.Request.Context(), ctx.Param("domain"), body, ifMatch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	writeDocument(ctx, http.StatusOK, doc, "Document saved successfully")
}

// GetSection returns one top-level section of a document
// @Summary Get a document section
// @Tags Content
// @Produce json
// @Param domain path string true "Content domain"
// @Param section path string true "Top-level section key"
// @Success 200 {object} response.ApiResponse[any]
// @Router /api/v1/content/{domain}/{section} [get]
func (c *ContentController) GetSection(ctx *gin.Context) {
	doc, err := c.contentService.GetSection(ctx.Request.Context(), ctx.Param("domain"), ctx.Param("section"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	writeDocument(ctx, http.StatusOK, doc, "")
}

// ReplaceSection merges one section into the stored document, leaving siblings untouched
// @Summary Replace a document section
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param domain path string true "Content domain"
// @Param section path string true "Top-level section key"
// @Param If-Match header string false "Expected document version"
// @Success 200 {object} response.ApiResponse[any]
// @Router /api/v1/content/{domain}/{section} [put]
func (c *ContentController) ReplaceSection(ctx *gin.Context) {
	ifMatch, body, ok := c.readWrite(ctx)
	if !ok {
		return
	}

	doc, err := c.contentService.ReplaceSection(ctx.Request.Context(), ctx.Param("domain"), ctx.Param("section"), body, ifMatch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	writeDocument(ctx, http.StatusOK, doc, "Section saved successfully")
}

// readWrite parses If-Match and reads the size-limited request body
func (c *ContentController) readWrite(ctx *gin.Context) (int64, []byte, bool) {
	ifMatch, err := ParseIfMatch(ctx.GetHeader("If-Match"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewError[any](err.Error()))
		return 0, nil, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, response.NewError[any]("request body too large"))
			return 0, nil, false
		}
		ctx.JSON(http.StatusBadRequest, response.NewError[any]("unable to read request body"))
		return 0, nil, false
	}
	return ifMatch, body, true
}

var errMalformedIfMatch = errors.New("If-Match must be a quoted document version")

// ParseIfMatch turns an If-Match header into an expected version.
// A missing header or "*" means any version.
func ParseIfMatch(header string) (int64, error) {
	header = strings.TrimSpace(header)
	if header == "" || header == "*" {
		return service.AnyVersion, nil
	}
	header = strings.TrimPrefix(header, "W/")
	version, err := strconv.ParseInt(strings.Trim(header, `"`), 10, 64)
	if err != nil || version < 0 {
		return 0, errMalformedIfMatch
	}
	return version, nil
}

// ETag formats a document version as an entity tag
func ETag(version int64) string {
	return `"` + strconv.FormatInt(version, 10) + `"`
}

func writeDocument(ctx *gin.Context, status int, doc *service.Document, message string) {
	ctx.Header("ETag", ETag(doc.Version))
	if message == "" {
		ctx.JSON(status, response.NewSuccessWithData(doc.Data))
		return
	}
	ctx.JSON(status, response.NewSuccess(doc.Data, message))
}
