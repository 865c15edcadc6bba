package main

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/JC-Quero/gym-tracker/internal/api"
	"github.com/JC-Quero/gym-tracker/internal/config"
	"github.com/JC-Quero/gym-tracker/internal/repository"
	"github.com/JC-Quero/gym-tracker/internal/service"
	"github.com/JC-Quero/gym-tracker/migrations"
)

func main() {
	cfg := config.Load()

	db, dialect, err := cfg.OpenDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	if err := migrations.AutoMigrate(3, dialect, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate schema")
	}

	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	userService := service.NewUserService(*userRepo, cfg.JWTSecret)
	exerciseService := service.NewExerciseService(*exerciseRepo)
	workoutService := service.NewWorkoutService(*workoutRepo)

	userHandler := api.NewUserHandler(*userService)
	exerciseHandler := api.NewExerciseHandler(*exerciseService)
	workoutHandler := api.NewWorkoutHandler(*workoutService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// Deliberately unrestricted; fine for trusted deployments only.
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	jwtConfig := echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.TokenClaims)
		},
		SigningKey: []byte(cfg.JWTSecret),
	}

	e.POST("/users/", userHandler.CreateUser)
	e.GET("/users/", userHandler.ListUsers)
	e.GET("/users/me", userHandler.Me, echojwt.WithConfig(jwtConfig))
	e.POST("/exercises/", exerciseHandler.CreateExercise)
	e.GET("/exercises/", exerciseHandler.ListExercises)
	e.POST("/workouts/", workoutHandler.CreateWorkout)
	e.GET("/workouts/", workoutHandler.ListWorkouts)
	e.GET("/workouts/user/:user_id", workoutHandler.ListUserWorkouts)
	e.DELETE("/workouts/:workout_id", workoutHandler.DeleteWorkout)
	e.GET("/history/:user_id/:exercise_id", workoutHandler.GetExerciseHistory)
	e.POST("/token", userHandler.Token)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "gym-tracker",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
