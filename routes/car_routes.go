package routes

import (
	"driveport/controllers"
	"driveport/middleware"
	"driveport/utils"

	"github.com/gin-gonic/gin"
)

// SetupCarRoutes registers the public catalog and the wishlist.
func SetupCarRoutes(r *gin.Engine) {
	db := utils.GetDB()
	carController := controllers.NewCarController(db)
	favoriteController := controllers.NewFavoriteController(db)

	cars := r.Group("/cars")
	{
		cars.GET("", carController.ListCars)
		cars.GET("/:id", carController.GetCar)
	}

	favorites := r.Group("/favorites", middleware.JWTAuthMiddleware())
	{
		favorites.GET("", favoriteController.GetFavorites)
		favorites.POST("/:carId", favoriteController.AddFavorite)
		favorites.DELETE("/:carId", favoriteController.RemoveFavorite)
	}
}
