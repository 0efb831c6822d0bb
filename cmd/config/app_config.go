package config

import (
	"os"
	"time"

	"RecipeShare-Backend/internal/api/handlers"
	"RecipeShare-Backend/internal/api/routes"
	"RecipeShare-Backend/internal/middleware"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/internal/utils/mailing"
	"RecipeShare-Backend/internal/utils/storage"
	"RecipeShare-Backend/pkg/activity"
	"RecipeShare-Backend/pkg/category"
	"RecipeShare-Backend/pkg/connection"
	"RecipeShare-Backend/pkg/jwt"
	"RecipeShare-Backend/pkg/like"
	"RecipeShare-Backend/pkg/rating"
	"RecipeShare-Backend/pkg/recipe"
	"RecipeShare-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	likeRepository := like.NewLikeRepository(db)
	connectionRepository := connection.NewConnectionRepository(db)
	activityRepository := activity.NewActivityRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, recipeRepository, jwtService, mailer)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, categoryRepository, s3)
	categoryService := category.NewCategoryService(categoryRepository)
	ratingService := rating.NewRatingService(ratingRepository, userRepository, recipeRepository)
	likeService := like.NewLikeService(likeRepository, userRepository, recipeRepository)
	connectionService := connection.NewConnectionService(connectionRepository, userRepository)
	activityService := activity.NewActivityService(activityRepository, userRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	likeHandler := handlers.NewLikeHandler(likeService)
	connectionHandler := handlers.NewConnectionHandler(connectionService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		CategoryHandler:   categoryHandler,
		RatingHandler:     ratingHandler,
		LikeHandler:       likeHandler,
		ConnectionHandler: connectionHandler,
		ActivityHandler:   activityHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
