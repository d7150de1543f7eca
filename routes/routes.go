package routes

import (
	"github.com/titobalza/apirest-starwars/controllers"
	"github.com/titobalza/apirest-starwars/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter creates the gin.Engine, registers all routes and returns the
// router. The database handle is passed down to every controller.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// CORS middleware before the routes
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	characterController := controllers.NewCharacterController(db)
	planetController := controllers.NewPlanetController(db)
	userController := controllers.NewUserController(db)
	favoriteController := controllers.NewFavoriteController(db)

	r.GET("/people", characterController.List)
	r.GET("/people/:id", characterController.Get)
	r.POST("/people", characterController.Create)

	r.GET("/planets", planetController.List)
	r.GET("/planets/:id", planetController.Get)
	r.POST("/planets", planetController.Create)

	r.GET("/users", userController.List)
	r.POST("/users", userController.Create)
	r.GET("/users/favorites", userController.Favorites)

	r.POST("/favorite/planets/:id", favoriteController.AddPlanet)
	r.DELETE("/favorite/planets/:id", favoriteController.RemovePlanet)
	r.POST("/favorite/people/:id", favoriteController.AddCharacter)
	r.DELETE("/favorite/people/:id", favoriteController.RemoveCharacter)

	return r
}
