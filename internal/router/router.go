package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "xactdiff/docs"
	"xactdiff/internal/handler"
	"xactdiff/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	maxUploadBytes int64,
	estimateH *handler.EstimateHandler,
	comparisonH *handler.ComparisonHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()
	// Two files per comparison upload.
	r.MaxMultipartMemory = 2 * maxUploadBytes

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Estimate routes
	estimates := v1.Group("/estimates")
	estimates.POST("", estimateH.Upload)
	estimates.POST("/debug", estimateH.Debug)
	estimates.GET("/:id", estimateH.GetByID)

	// Comparison routes
	comparisons := v1.Group("/comparisons")
	comparisons.POST("", comparisonH.Compare)
	comparisons.POST("/files", comparisonH.CompareFiles)
	comparisons.GET("/:id", comparisonH.GetByID)
	comparisons.GET("/:id/export", comparisonH.Export)

	return r
}
