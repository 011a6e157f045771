package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/observability"
)

const readinessTimeout = 2 * time.Second

// ReadinessCheck pings one backing dependency
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthStatus is the body of the health and readiness checks
type HealthStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// SystemController serves health checks, metrics and admin maintenance triggers
type SystemController struct {
	version        string
	checks         []ReadinessCheck
	metrics        *observability.MetricsProvider
	snapshots      service.SnapshotService
	seeder         service.Seeder
	authMiddleware *middleware.AuthMiddleware
}

// NewSystemController creates a new SystemController instance
func NewSystemController(
	version string,
	checks []ReadinessCheck,
	metrics *observability.MetricsProvider,
	snapshots service.SnapshotService,
	seeder service.Seeder,
	authMiddleware *middleware.AuthMiddleware,
) *SystemController {
	return &SystemController{
		version:        version,
		checks:         checks,
		metrics:        metrics,
		snapshots:      snapshots,
		seeder:         seeder,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers the health, metrics and admin routes
func (c *SystemController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.Health)
	router.GET("/ready", c.Ready)
	if c.metrics != nil {
		router.GET("/metrics", gin.WrapH(c.metrics.Handler()))
	}

	admin := router.Group("/admin")
	admin.Use(c.authMiddleware.Admin()...)
	{
		admin.POST("/snapshot", c.Snapshot)
		admin.POST("/seed", c.Seed)
	}
}

// Health reports that the process is serving
// @Summary Liveness check
// @Tags System
// @Router /api/v1/health [get]
func (c *SystemController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(HealthStatus{Status: "ok", Version: c.version}))
}

// Ready runs every readiness check and answers 503 if any fails
// @Summary Readiness check
// @Tags System
// @Router /api/v1/ready [get]
func (c *SystemController) Ready(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), readinessTimeout)
	defer cancel()

	status := HealthStatus{Status: "ok", Version: c.version, Checks: make(map[string]string, len(c.checks))}
	code := http.StatusOK
	for _, check := range c.checks {
		if err := check.Check(checkCtx); err != nil {
			status.Checks[check.Name] = err.Error()
			status.Status = "unavailable"
			code = http.StatusServiceUnavailable
			continue
		}
		status.Checks[check.Name] = "ok"
	}

	if code != http.StatusOK {
		ctx.JSON(code, response.NewErrorWithDetails[any]("service not ready", status))
		return
	}
	ctx.JSON(code, response.NewSuccessWithData(status))
}

// Snapshot writes a JSON snapshot of every content document now
// @Summary Take a content snapshot
// @Tags System
// @Security BearerAuth
// @Success 201 {object} response.ApiResponse[response.SnapshotResponse]
// @Router /api/v1/admin/snapshot [post]
func (c *SystemController) Snapshot(ctx *gin.Context) {
	result, err := c.snapshots.Snapshot(ctx.Request.Context())
	if c.metrics != nil && err != service.ErrSnapshotDisabled {
		c.metrics.RecordSnapshot(err == nil)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewSuccess(response.SnapshotResponse{
		Path:      result.Path,
		Documents: result.Documents,
		TakenAt:   result.TakenAt,
	}, "Snapshot written"))
}

// Seed loads the bundled demo content into whatever is still empty
// @Summary Seed default content
// @Tags System
// @Security BearerAuth
// @Success 200 {object} response.ApiResponse[response.SeedResponse]
// @Router /api/v1/admin/seed [post]
func (c *SystemController) Seed(ctx *gin.Context) {
	result, err := c.seeder.Seed(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	documents := result.Documents
	if documents == nil {
		documents = []string{}
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(response.SeedResponse{
		Documents: documents,
		Blogs:     result.Blogs,
		Events:    result.Events,
		Contacts:  result.Contacts,
	}, "Seed complete"))
}
