package routes

import (
	"os"
	"strings"

	"driveport/controllers"
	"driveport/middleware"
	"driveport/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates the gin.Engine and registers every route group.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	origins := []string{"http://localhost:3000", "https://driveport.ng", "https://www.driveport.ng"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		origins = append(origins, strings.Split(extra, ",")...)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	rdb := utils.GetRedis()
	userController := controllers.NewUserController(rdb)
	profileController := controllers.NewProfileController(rdb)

	auth := r.Group("/auth")
	{
		auth.POST("/register", userController.Register)
		auth.POST("/confirm-otp", userController.ConfirmOTP)
		auth.POST("/set-password-final", userController.SetPasswordFinal)
		auth.POST("/login", userController.Login)
		auth.POST("/forgot-password", userController.ForgotPassword)
		auth.POST("/reset-password", userController.ResetPassword)
		auth.GET("/google", userController.GoogleLogin)
		auth.GET("/google/callback", userController.GoogleCallback)
		auth.POST("/google/complete", userController.GoogleComplete)
	}

	profile := r.Group("/profile", middleware.JWTAuthMiddleware())
	{
		profile.GET("", profileController.GetProfile)
		profile.PUT("", profileController.UpdateProfile)
		profile.POST("/change-password", profileController.ChangePassword)
		profile.POST("/logout", profileController.Logout)
	}

	SetupCarRoutes(r)
	SetupFinanceRoutes(r)
	SetupOrderRoutes(r)
	SetupPaymentRoutes(r)
	SetupAnalyticsRoutes(r)
	SetupAdminRoutes(r)

	return r
}
