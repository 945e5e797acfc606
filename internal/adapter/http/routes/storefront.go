package routes

import (
	"cardapio_digital/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAppData        = "/app-data"
	PathRestaurant     = "/restaurant"
	PathPaymentMethods = "/payment-methods"
	PathCarts          = "/carts"
	PathAuth           = "/auth"
)

func addStorefrontRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathAppData, catalogHandler.GetAppData)
	rg.GET(PathRestaurant, catalogHandler.GetRestaurant)
	rg.GET(PathPaymentMethods, catalogHandler.ListPaymentMethods)
}

func addCartRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	carts := rg.Group(PathCarts)
	{
		carts.POST("", cartHandler.CreateCart)
		carts.GET("/:cart_id", cartHandler.GetCart)
		carts.POST("/:cart_id/items", cartHandler.AddItem)
		carts.PATCH("/:cart_id/lines", cartHandler.UpdateLine)
		carts.DELETE("/:cart_id/lines", cartHandler.RemoveLine)
		carts.POST("/:cart_id/checkout/open", cartHandler.OpenCheckout)
		carts.POST("/:cart_id/coupon", cartHandler.ApplyCoupon)
		carts.DELETE("/:cart_id/coupon", cartHandler.RemoveCoupon)
		carts.POST("/:cart_id/checkout", cartHandler.Checkout)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/verify", authHandler.Verify)
		auth.POST("/resend-code", authHandler.ResendCode)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}
}
