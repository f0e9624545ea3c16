package v1

import (
	"github.com/blocktrace/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Model endpoints - protected by AuthMiddleware
	modelGroup := router.Group("/models")
	modelGroup.Use(middleware.AuthMiddleware())
	{
		modelGroup.GET("", ListModels)
		modelGroup.POST("", CreateModel)
		modelGroup.GET("/:id", GetModel)
		modelGroup.PUT("/:id", UpdateModel)
		modelGroup.DELETE("/:id", DeleteModel)

		modelGroup.GET("/:id/blocks", ListModelBlocks)
		modelGroup.GET("/:id/requirements", ListModelRequirements)
		modelGroup.GET("/:id/links", ListModelLinks)
		modelGroup.GET("/:id/traceability", GetTraceability)
		modelGroup.GET("/:id/diagrams", ListModelDiagrams)
		modelGroup.GET("/:id/shares", ListShares)
		modelGroup.GET("/:id/export/json", ExportModelJSON)
		modelGroup.GET("/:id/export/xmi", ExportModelXMI)
	}

	// Block endpoints - protected by AuthMiddleware
	blockGroup := router.Group("/blocks")
	blockGroup.Use(middleware.AuthMiddleware())
	{
		blockGroup.POST("", CreateBlock)
		blockGroup.PUT("/:id", UpdateBlock)
		blockGroup.DELETE("/:id", DeleteBlock)
	}

	// Requirement endpoints - protected by AuthMiddleware
	requirementGroup := router.Group("/requirements")
	requirementGroup.Use(middleware.AuthMiddleware())
	{
		requirementGroup.GET("", ListRequirements)
		requirementGroup.POST("", CreateRequirement)
		requirementGroup.PUT("/:id", UpdateRequirement)
		requirementGroup.DELETE("/:id", DeleteRequirement)
		requirementGroup.PUT("/:id/links", ReplaceRequirementLinks)
		requirementGroup.DELETE("/:id/links/:blockId", UnlinkBlock)
	}

	// Link endpoints - protected by AuthMiddleware
	linkGroup := router.Group("/links")
	linkGroup.Use(middleware.AuthMiddleware())
	{
		linkGroup.POST("", CreateLink)
		linkGroup.DELETE("/:id", DeleteLink)
	}

	// Sharing endpoints - protected by AuthMiddleware
	shareGroup := router.Group("")
	shareGroup.Use(middleware.AuthMiddleware())
	{
		shareGroup.POST("/share", ShareModel)
		shareGroup.GET("/shared", ListSharedWithMe)
		shareGroup.DELETE("/shares/:id", RemoveShare)
	}

	// Diagram endpoints - protected by AuthMiddleware
	diagramGroup := router.Group("/diagrams")
	diagramGroup.Use(middleware.AuthMiddleware())
	{
		diagramGroup.POST("", CreateDiagram)
		diagramGroup.GET("/:id", GetDiagram)
		diagramGroup.PUT("/:id", UpdateDiagram)
		diagramGroup.DELETE("/:id", DeleteDiagram)
		diagramGroup.PUT("/:id/blocks/:blockId", PlaceBlock)
		diagramGroup.DELETE("/:id/blocks/:blockId", RemoveBlock)
	}

	// Import endpoint - protected by AuthMiddleware
	importGroup := router.Group("/import")
	importGroup.Use(middleware.AuthMiddleware())
	{
		importGroup.POST("/json", ImportModelJSON)
	}
}
