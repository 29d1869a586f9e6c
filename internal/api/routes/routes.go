package routes

import (
	"log"

	"biodata-api/internal/api/handlers"
	"biodata-api/internal/api/middleware"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles everything the router dispatches to.
type Handlers struct {
	Auth    handlers.AuthHandlerInterface
	Biodata handlers.BiodataHandlerInterface
	Admin   handlers.AdminBiodataHandlerInterface
	Health  gin.HandlerFunc
}

// RegisterRoutes sets up the API routes. Access control comes from the
// policy table through a single Authorize middleware.
func RegisterRoutes(router *gin.Engine, h Handlers, verifier middleware.TokenVerifier) {
	router.Use(middleware.Authorize(verifier))

	api := router.Group("/api")

	RegisterAuthRoutes(api, h.Auth)
	RegisterBiodataRoutes(api, h.Biodata)
	RegisterAdminRoutes(api, h.Admin)
	api.GET("/policy", handlers.GetPolicy)

	// --- Health Check ---
	router.GET("/health", h.Health)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// RegisterAuthRoutes registers account and token routes.
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler handlers.AuthHandlerInterface) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}
}

// RegisterBiodataRoutes registers the caller-scoped biodata routes.
func RegisterBiodataRoutes(rg *gin.RouterGroup, biodataHandler handlers.BiodataHandlerInterface) {
	biodata := rg.Group("/biodata")
	{
		biodata.GET("", biodataHandler.ListOwn)
		biodata.POST("", biodataHandler.CreateOwn)
		biodata.GET("/:id", biodataHandler.GetOwn)
		biodata.PUT("/:id", biodataHandler.UpdateOwn)
		biodata.DELETE("/:id", biodataHandler.DeleteOwn)
	}
}

// RegisterAdminRoutes registers the unscoped admin biodata routes.
func RegisterAdminRoutes(rg *gin.RouterGroup, adminHandler handlers.AdminBiodataHandlerInterface) {
	admin := rg.Group("/admin/biodata")
	{
		admin.GET("", adminHandler.ListAll)
		admin.GET("/export", adminHandler.Export)
		admin.GET("/:id", adminHandler.GetAny)
		admin.PUT("/:id", adminHandler.UpdateAny)
		admin.DELETE("/:id", adminHandler.DeleteAny)
	}
}
