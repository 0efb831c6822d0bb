package routes

import (
	"RecipeShare-Backend/internal/api/handlers"
	"RecipeShare-Backend/internal/middleware"
	"RecipeShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	CategoryHandler   handlers.CategoryHandler
	RatingHandler     handlers.RatingHandler
	LikeHandler       handlers.LikeHandler
	ConnectionHandler handlers.ConnectionHandler
	ActivityHandler   handlers.ActivityHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Recipes()
	c.Categories()
	c.Ratings()
	c.Likes()
	c.GuestRoute()
}

// Users also carries the connection and per-user activity routes. Static
// segments (me, register, connections, finished, started) are registered
// before the parameterised ones so they are not shadowed.
func (c *Config) Users() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/register", c.UserHandler.Register)
		users.Post("/login", c.UserHandler.Login)
		users.Get("/me", auth, c.UserHandler.GetMe)

		users.Get("/connections", c.ConnectionHandler.GetConnections)
		users.Get("/connections/:id/followers", c.ConnectionHandler.GetFollowers)
		users.Get("/connections/:id/follows", c.ConnectionHandler.GetFollowed)
		users.Post("/connections/:followerID/follows/:followedID", auth, c.ConnectionHandler.FollowUser)
		users.Delete("/connections/:id", auth, c.ConnectionHandler.Unfollow)

		users.Get("", c.UserHandler.GetUsers)
		users.Get("/:id", c.UserHandler.GetUser)
		users.Delete("/:id", auth, c.UserHandler.DeleteUser)

		users.Get("/:id/recipes/finished", c.ActivityHandler.GetFinishedRecipes)
		users.Get("/:id/recipes/started", c.ActivityHandler.GetStartedRecipes)
		users.Get("/:id/recipes", c.UserHandler.GetUserRecipes)
		users.Get("/:id/recipes/:recipeID", c.UserHandler.GetUserRecipe)

		users.Get("/:id/likes", c.LikeHandler.GetRecipesUserLikes)
		users.Get("/:userID/recipes/:recipeID/likes", c.LikeHandler.GetLike)
		users.Post("/:userID/recipes/:recipeID/likes", auth, c.LikeHandler.LikeRecipe)
		users.Delete("/:userID/recipes/:recipeID/likes", auth, c.LikeHandler.UnlikeRecipe)

		users.Post("/:userID/recipes/:recipeID/finished", auth, c.ActivityHandler.FinishRecipe)
		users.Post("/:userID/recipes/:recipeID/started", auth, c.ActivityHandler.StartRecipe)
		users.Delete("/:userID/recipes/:recipeID/started", auth, c.ActivityHandler.StopRecipe)
	}
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/first", c.RecipeHandler.GetFirstRecipe)
		recipes.Get("/search", c.RecipeHandler.SearchRecipes)
		recipes.Get("/sorted", c.RecipeHandler.GetRecipesSorted)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Get("/:id/user", c.RecipeHandler.GetRecipeOwner)
		recipes.Get("/:id/likes/users", c.LikeHandler.GetRecipeLikers)

		recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
		recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/picture", auth, c.RecipeHandler.UploadPicture)

		recipes.Get("/:id/categories", c.RecipeHandler.GetRecipeCategories)
		recipes.Post("/:id/categories/:categoryID", auth, c.RecipeHandler.AttachCategory)
		recipes.Delete("/:id/categories/:categoryID", auth, c.RecipeHandler.DetachCategory)
	}
}

func (c *Config) Categories() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	categories := c.App.Group("/api/v1/categories")
	{
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Get("/:id", c.CategoryHandler.GetCategory)
		categories.Get("/:id/recipes", c.CategoryHandler.GetCategoryRecipes)

		categories.Post("", auth, c.CategoryHandler.CreateCategory)
		categories.Put("/:id", auth, c.CategoryHandler.UpdateCategory)
		categories.Delete("/:id", auth, c.CategoryHandler.DeleteCategory)
	}
}

func (c *Config) Ratings() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	ratings := c.App.Group("/api/v1/ratings")
	{
		ratings.Get("", c.RatingHandler.GetRatings)
		ratings.Get("/recipes/:id", c.RatingHandler.GetRecipeRatings)
		ratings.Get("/recipes/:id/stripped", c.RatingHandler.GetRecipeRatingsStripped)
		ratings.Get("/recipes/:id/users", c.RatingHandler.GetRecipeRaters)
		ratings.Get("/users/:id", c.RatingHandler.GetUserRatings)
		ratings.Get("/users/:id/recipes", c.RatingHandler.GetRecipesUserRated)

		ratings.Post("/users/:userID/rates/recipes/:recipeID", auth, c.RatingHandler.CreateRating)
		ratings.Put("/:id", auth, c.RatingHandler.UpdateRating)
		ratings.Delete("/users/:userID/rates/recipes/:recipeID", auth, c.RatingHandler.DeleteRating)
	}
}

func (c *Config) Likes() {
	c.App.Get("/api/v1/likes", c.LikeHandler.GetLikes)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
