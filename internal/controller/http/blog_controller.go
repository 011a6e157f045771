package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
)

// BlogController handles blog post endpoints
type BlogController struct {
	blogService    service.BlogService
	authMiddleware *middleware.AuthMiddleware
}

// NewBlogController creates a new BlogController instance
func NewBlogController(blogService service.BlogService, authMiddleware *middleware.AuthMiddleware) *BlogController {
	return &BlogController{
		blogService:    blogService,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers the blog routes
func (c *BlogController) RegisterRoutes(router *gin.RouterGroup) {
	blogs := router.Group("/blogs")
	admin := c.authMiddleware.Admin()
	{
		blogs.GET("", c.authMiddleware.OptionalAuth(), c.List)
		blogs.GET("/slug/:slug", c.GetBySlug)
		blogs.GET("/:id", c.GetByID)
		blogs.POST("", append(admin, c.Create)...)
		blogs.PUT("/:id", append(admin, c.Update)...)
		blogs.DELETE("/:id", append(admin, c.Delete)...)
	}
}

// List returns blog posts, newest first. Drafts are only listed for the admin.
// @Summary List blog posts
// @Tags Blogs
// @Produce json
// @Param q query string false "Search title, excerpt and content"
// @Param category query string false "Category"
// @Success 200 {object} response.ApiResponse[response.ListResponse[content.BlogPost]]
// @Router /api/v1/blogs [get]
func (c *BlogController) List(ctx *gin.Context) {
	claims := security.GetClaims(ctx)
	query := service.BlogQuery{
		Query:         ctx.Query("q"),
		Category:      ctx.Query("category"),
		PublishedOnly: claims == nil || !claims.IsAdmin(),
	}

	posts, err := c.blogService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(response.NewListResponse(posts)))
}

// GetByID returns one blog post
// @Summary Get a blog post by id
// @Tags Blogs
// @Param id path string true "Post ID"
// @Router /api/v1/blogs/{id} [get]
func (c *BlogController) GetByID(ctx *gin.Context) {
	post, err := c.blogService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(post))
}

// GetBySlug returns the post rendered at /blog/<slug>
// @Summary Get a blog post by slug
// @Tags Blogs
// @Param slug path string true "Post slug"
// @Router /api/v1/blogs/slug/{slug} [get]
func (c *BlogController) GetBySlug(ctx *gin.Context) {
	post, err := c.blogService.GetBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(post))
}

// Create publishes a new blog post
// @Summary Create a blog post
// @Tags Blogs
// @Security BearerAuth
// @Param request body request.BlogPostRequest true "Post"
// @Success 201 {object} response.ApiResponse[content.BlogPost]
// @Router /api/v1/blogs [post]
func (c *BlogController) Create(ctx *gin.Context) {
	var req request.BlogPostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.blogService.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewSuccess(post, "Blog post created successfully"))
}

// Update replaces a blog post
// @Summary Update a blog post
// @Tags Blogs
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Router /api/v1/blogs/{id} [put]
func (c *BlogController) Update(ctx *gin.Context) {
	var req request.BlogPostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.blogService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(post, "Blog post updated successfully"))
}

// Delete removes a blog post
// @Summary Delete a blog post
// @Tags Blogs
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Router /api/v1/blogs/{id} [delete]
func (c *BlogController) Delete(ctx *gin.Context) {
	if err := c.blogService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Blog post deleted successfully"))
}

