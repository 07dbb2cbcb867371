package routes

import (
	"driveport/controllers"
	"driveport/middleware"
	"driveport/services"
	"driveport/utils"

	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes registers checkout, order history, payment plans,
// shipping tracking and notifications. Everything here requires auth.
func SetupOrderRoutes(r *gin.Engine) {
	db := utils.GetDB()
	rates := services.NewGormRateSource(db)
	orderController := controllers.NewOrderController(db, rates)
	planController := controllers.NewPlanController(db)
	shippingController := controllers.NewShippingController(db)
	notificationController := controllers.NewNotificationController(db)

	orders := r.Group("/orders", middleware.JWTAuthMiddleware())
	{
		orders.POST("", orderController.CreateOrder)
		orders.GET("", orderController.GetUserOrders)
		orders.GET("/stats", orderController.GetMyOrderStats)
		orders.GET("/:ref", orderController.GetOrder)
		orders.POST("/:ref/cancel", orderController.CancelOrder)
		orders.GET("/:ref/shipping", shippingController.GetShipping)
	}

	plans := r.Group("/plans", middleware.JWTAuthMiddleware())
	{
		plans.GET("", planController.GetUserPlans)
		plans.GET("/:ref", planController.GetPlan)
	}

	notifications := r.Group("/notifications", middleware.JWTAuthMiddleware())
	{
		notifications.GET("", notificationController.GetNotifications)
		notifications.PATCH("/:id/read", notificationController.MarkRead)
		notifications.POST("/read-all", notificationController.MarkAllRead)
	}
}
