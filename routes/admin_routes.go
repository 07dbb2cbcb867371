package routes

import (
	"driveport/controllers"
	admincontrollers "driveport/controllers/admin"
	"driveport/middleware"
	"driveport/services"
	"driveport/utils"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the admin API. Every route requires a valid JWT
// with the admin role.
func SetupAdminRoutes(r *gin.Engine) {
	db := utils.GetDB()
	adminController := admincontrollers.NewAdminController(db)
	rateController := admincontrollers.NewRateController(db)
	carController := controllers.NewCarController(db)
	orderController := controllers.NewOrderController(db, services.NewGormRateSource(db))
	shippingController := controllers.NewShippingController(db)
	analyticsController := controllers.NewAnalyticsController(db)

	adminGroup := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.AdminOnly())
	{
		adminGroup.GET("/dashboard", adminController.GetDashboard)
		adminGroup.GET("/system", adminController.GetSystemInfo)

		adminGroup.GET("/users", adminController.GetUsers)
		adminGroup.DELETE("/users/:id", adminController.DeleteUser)

		adminGroup.GET("/rates", rateController.GetRates)
		adminGroup.POST("/rates", rateController.CreateRate)
		adminGroup.PUT("/rates/:id", rateController.UpdateRate)
		adminGroup.DELETE("/rates/:id", rateController.DeleteRate)

		adminGroup.POST("/cars", carController.CreateCar)
		adminGroup.PUT("/cars/:id", carController.UpdateCar)
		adminGroup.DELETE("/cars/:id", carController.DeleteCar)
		adminGroup.POST("/cars/upload-image", carController.UploadImage)

		adminGroup.GET("/orders", orderController.GetAllOrders)
		adminGroup.GET("/orders/stats", orderController.GetOrderStats)
		adminGroup.PATCH("/orders/:ref/status", orderController.UpdateOrderStatus)
		adminGroup.PUT("/orders/:ref/shipping", shippingController.UpdateShipping)

		adminGroup.GET("/analytics/top-cars", analyticsController.GetTopCars)
		adminGroup.GET("/analytics/sources", analyticsController.GetViewsBySource)
	}
}
