package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
)

// AuthController handles admin authentication endpoints
type AuthController struct {
	authService service.AuthService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers the auth routes
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", c.Login)
		auth.POST("/logout", c.Logout)
	}
}

// Login handles admin login
// @Summary Login with the admin username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.ApiResponse[response.AuthResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	authResp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(authResp, "Login successful"))
}

// Logout revokes the presented token. Logging out without a token is a no-op.
// @Summary Logout and revoke the current token
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ApiResponse[any]
// @Router /api/v1/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token, ok := middleware.BearerToken(ctx); ok {
		if err := c.authService.Logout(ctx.Request.Context(), token); err != nil {
			respondError(ctx, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Logged out successfully"))
}
