package routes

import (
	"driveport/controllers"
	"driveport/utils"

	"github.com/gin-gonic/gin"
)

// SetupAnalyticsRoutes registers the public view tracker.
func SetupAnalyticsRoutes(r *gin.Engine) {
	analyticsController := controllers.NewAnalyticsController(utils.GetDB())

	r.POST("/analytics/view", analyticsController.TrackView)
}
