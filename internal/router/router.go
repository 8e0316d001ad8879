// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/database"
	"pet-adoption/internal/handler"
	"pet-adoption/internal/handler/auth"
	"pet-adoption/internal/handler/orders"
	"pet-adoption/internal/handler/pets"
	"pet-adoption/internal/handler/users"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/service"
	"pet-adoption/internal/worker"
)

// Deps 路由所需的依賴
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Pool     worker.Pool
	Tokens   auth.TokenConfig
	Images   pets.ImageConfig
	Decision service.DecisionPolicy
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")
	requireAdmin := middleware.RequireAdminUser(d.DB)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 登入、註冊、換發令牌
	api.POST("/auth/login", auth.LoginHandler(d.DB, d.Cache, d.Tokens))
	api.POST("/auth/register", auth.RegisterHandler(d.DB))
	api.POST("/auth/refresh", auth.RefreshHandler(d.DB, d.Cache, d.Tokens))

	// 當前使用者
	apiUser := api.Group("/user", middleware.RequireAuth)
	apiUser.GET("/profile", users.GetProfileHandler(d.DB))
	apiUser.GET("/favorites", users.ListFavoritesHandler(d.DB, d.Cache))
	apiUser.PUT("/favorites/:pet_id", users.AddFavoriteHandler(d.DB, d.Cache))
	apiUser.DELETE("/favorites/:pet_id", users.RemoveFavoriteHandler(d.Cache))

	// 寵物
	api.GET("/pets", pets.ListPetsHandler(d.DB), middleware.RequireAuth)
	api.POST("/pets", pets.CreatePetHandler(d.DB, d.Cache, d.Pool, d.Images), requireAdmin)
	api.GET("/pets/:id/image", pets.GetPetImageHandler(d.DB, d.Cache, d.Images.CacheTTL), middleware.RequireAuth)

	// 管理員專屬
	apiAdmin := api.Group("/admin", requireAdmin)
	apiAdmin.GET("/pets", pets.ListAllPetsHandler(d.DB))

	// 領養申請
	apiOrders := api.Group("/orders", middleware.RequireAuth)
	apiOrders.GET("", orders.ListOrdersHandler(d.DB))
	apiOrders.POST("", orders.CreateOrderHandler(d.DB))
	api.PUT("/orders/:id/status", orders.UpdateOrderStatusHandler(d.DB, d.Decision), requireAdmin)
}
