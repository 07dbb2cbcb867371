package routes

import (
	"driveport/controllers"
	"driveport/services"
	"driveport/utils"

	"github.com/gin-gonic/gin"
)

// SetupFinanceRoutes registers the public installment calculator. No auth:
// shoppers preview financing before they have an account.
func SetupFinanceRoutes(r *gin.Engine) {
	rates := services.NewGormRateSource(utils.GetDB())
	financeController := controllers.NewFinanceController(rates)

	finance := r.Group("/finance")
	{
		finance.GET("/rates", financeController.GetRates)
		finance.POST("/preview", financeController.PreviewInstallment)
		finance.POST("/schedule", financeController.PreviewSchedule)
	}
}
