package routes

import (
	"cardapio_digital/internal/adapter/http/handlers"
	"cardapio_digital/internal/adapter/http/middlewares"
	"cardapio_digital/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin        = "/admin"
	PathAdminAppData = "/app-data"
	PathAdminImages  = "/images"
)

// addAdminSecretRoutes registers the endpoints called with the shared admin
// secret. CORS runs first so preflight requests never need the secret.
func addAdminSecretRoutes(rg *gin.RouterGroup, secret string, catalogHandler *handlers.CatalogHandler, imageHandler *handlers.ImageHandler) {
	admin := rg.Group(PathAdmin)

	appData := admin.Group(PathAdminAppData, middlewares.CORS("POST, OPTIONS"))
	{
		appData.OPTIONS("", noContent)
		appData.POST("", middlewares.AdminSecret(secret), catalogHandler.SaveAppData)
	}

	images := admin.Group(PathAdminImages, middlewares.CORS("POST, DELETE, OPTIONS"))
	{
		images.OPTIONS("", noContent)
		images.POST("", middlewares.AdminSecret(secret), imageHandler.UploadImage)
		images.DELETE("", middlewares.AdminSecret(secret), imageHandler.DeleteImage)
	}
}

// addAdminSessionRoutes registers the admin panel endpoints, which need a
// bearer session of an admin user.
func addAdminSessionRoutes(rg *gin.RouterGroup, auth usecase.IAuthUseCase, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, middlewares.RequireAdmin(auth))
	{
		admin.GET("/catalog", adminHandler.GetCatalog)
		admin.POST("/catalog/reload", adminHandler.ReloadCatalog)
		admin.POST("/catalog/commit", adminHandler.CommitCatalog)
		admin.PATCH("/items/:id/availability", adminHandler.ToggleItemAvailability)
		admin.POST("/coupons", adminHandler.AddCoupon)
		admin.PUT("/coupons/:id", adminHandler.UpdateCoupon)
		admin.PATCH("/coupons/:id/activity", adminHandler.ToggleCouponActivity)
	}
}

// noContent answers preflight requests; CORS aborts before it is reached.
func noContent(c *gin.Context) {
	c.Status(204)
}
