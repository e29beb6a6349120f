package handler

import (
	"github.com/gin-gonic/gin"

	"ordermanager/internal/app/middleware"
	"ordermanager/internal/app/role"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api/v1")

	// ============ Заказы (Orders) - только для сотрудников ============
	orders := api.Group("/orders", authMiddleware.WithAuthCheck(role.Staff))
	{
		orders.GET("/", h.GetOrders)
		orders.GET("/:id/", h.GetOrder)
		orders.PUT("/:id/", h.CompleteOrder)
		orders.PATCH("/:id/", h.CompleteOrder)
	}

	// ============ Услуги (Services) - только для клиентов ============
	services := api.Group("/services", authMiddleware.WithAuthCheck(role.Customer))
	{
		services.GET("/", h.GetServices)
		services.POST("/:id/orders/", h.CreateOrder)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.LoginUser)

		auth.POST("/logout", authMiddleware.WithAuthCheck(), h.AuthHandler.LogoutUser)
		auth.GET("/profile", authMiddleware.WithAuthCheck(), h.AuthHandler.GetUserProfile)
	}

	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
