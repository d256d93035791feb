package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	accountfx "lankatrip/cmd/fx/account_fx"
	catalogfx "lankatrip/cmd/fx/catalog_fx"
	controllersfx "lankatrip/cmd/fx/controllers_fx"
	dbfx "lankatrip/cmd/fx/db_fx"
	distancefx "lankatrip/cmd/fx/distance_fx"
	locationsfx "lankatrip/cmd/fx/locations_fx"
	plannerfx "lankatrip/cmd/fx/planner_fx"
	"lankatrip/internal/api/controllers"
	"lankatrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	app := fx.New(
		dbfx.Module,
		catalogfx.Module,
		distancefx.Module,
		plannerfx.Module,
		locationsfx.Module,
		accountfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
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
	planController *controllers.PlanController,
	locationsController *controllers.LocationsController,
	accountController *controllers.AccountController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, locationsController, accountController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	planController *controllers.PlanController,
	locationsController *controllers.LocationsController,
	accountController *controllers.AccountController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	plans := v1.Group("/plans")
	plans.POST("/generate", planController.GeneratePlan)
	plans.POST("/reserve", middleware.JWTAuthMiddleware(), planController.ReserveTrip)

	locations := v1.Group("/locations")
	locations.GET("", locationsController.ListLocations)
	locations.GET("/:name", locationsController.GetLocationByName)

	accounts := v1.Group("/accounts")
	accounts.POST("/signup", accountController.SignUp)
	accounts.POST("/login", accountController.Login)
}
