package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"goindia/cmd/fx/account_fx"
	"goindia/cmd/fx/assistant_fx"
	"goindia/cmd/fx/db_fx"
	"goindia/cmd/fx/explore_fx"
	"goindia/cmd/fx/food_fx"
	"goindia/cmd/fx/llm_fx"
	"goindia/cmd/fx/trip_fx"
	"goindia/cmd/fx/usage_fx"
	"goindia/internal/api/controllers"
	"goindia/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		llm_fx.Module,
		account_fx.Module,
		usage_fx.Module,
		assistant_fx.Module,
		trip_fx.Module,
		food_fx.Module,
		explore_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	usageController *controllers.UsageController,
	assistantController *controllers.AssistantController,
	tripController *controllers.TripController,
	foodController *controllers.FoodController,
	exploreController *controllers.ExploreController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		usageController,
		assistantController,
		tripController,
		foodController,
		exploreController,
		adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	usageController *controllers.UsageController,
	assistantController *controllers.AssistantController,
	tripController *controllers.TripController,
	foodController *controllers.FoodController,
	exploreController *controllers.ExploreController,
	adminController *controllers.AdminController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	exploreGroup := r.Group("/explore")
	exploreGroup.GET("/cities", exploreController.ListCities)
	exploreGroup.GET("/cities/:id", exploreController.GetCity)
	exploreGroup.GET("/tehsils/:id/locations", exploreController.ListLocations)
	exploreGroup.GET("/locations/:id", exploreController.GetLocation)
	exploreGroup.GET("/phrases", exploreController.ListPhrases)
	exploreGroup.GET("/weather", exploreController.CityWeather)

	profileGroup := r.Group("/profile", middleware.JWTAuthMiddleware())
	profileGroup.GET("", accountController.GetProfile)
	profileGroup.GET("/usage", usageController.GetUsage)
	profileGroup.POST("/upgrade", usageController.Upgrade)

	assistantGroup := r.Group("/assistant", middleware.JWTAuthMiddleware())
	assistantGroup.POST("/chat", assistantController.Chat)
	assistantGroup.POST("/translate", assistantController.Translate)
	assistantGroup.POST("/fare", assistantController.EstimateFare)

	tripGroup := r.Group("/trips", middleware.JWTAuthMiddleware())
	tripGroup.POST("/generate", tripController.Generate)
	tripGroup.GET("", tripController.ListMine)
	tripGroup.GET("/:id", tripController.GetByID)
	tripGroup.DELETE("/:id", tripController.Delete)

	foodGroup := r.Group("/food", middleware.JWTAuthMiddleware())
	foodGroup.POST("/score", foodController.Score)

	adminGroup := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.POST("/cities", adminController.CreateCity)
	adminGroup.POST("/locations", adminController.CreateLocation)
	adminGroup.PUT("/locations/:id", adminController.UpdateLocation)
	adminGroup.DELETE("/locations/:id", adminController.DeleteLocation)
}
