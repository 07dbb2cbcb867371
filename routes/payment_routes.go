package routes

import (
	"driveport/controllers"
	"driveport/middleware"
	"driveport/utils"

	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes registers the Paystack checkout flow. The webhook and
// the verify callback are unauthenticated: Paystack calls them directly.
func SetupPaymentRoutes(r *gin.Engine) {
	paymentController := controllers.NewPaymentController(utils.GetDB())

	payments := r.Group("/payments")
	{
		payments.POST("", middleware.JWTAuthMiddleware(), paymentController.CreatePayment)
		payments.GET("", middleware.JWTAuthMiddleware(), paymentController.GetUserPayments)
		payments.GET("/verify/:reference", paymentController.VerifyPayment)
		payments.POST("/webhook", paymentController.Webhook)
	}
}
