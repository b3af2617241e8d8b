package routes

import (
	"pantryplanner/internal/api/handlers"
	"pantryplanner/internal/middleware"
	"pantryplanner/pkg/household"
	"pantryplanner/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	HouseholdHandler handlers.HouseholdHandler
	PantryHandler    handlers.PantryHandler
	RecipeHandler    handlers.RecipeHandler
	MealPlanHandler  handlers.MealPlanHandler
	ShoppingHandler  handlers.ShoppingHandler
	AlertsHandler    handlers.AlertsHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
	HouseholdService household.HouseholdService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Household()
	c.Pantry()
	c.Recipes()
	c.MealPlans()
	c.Shopping()
	c.Alerts()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) scoped() fiber.Handler {
	return c.Middleware.HouseholdMiddleware(c.HouseholdService)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.auth(), c.UserHandler.Me)
	}
}

func (c *Config) Household() {
	households := c.App.Group("/api/v1/households", c.auth())
	{
		households.Get("", c.HouseholdHandler.ListMyHouseholds)
		households.Post("/invites/accept", c.HouseholdHandler.AcceptInvite)
		households.Get("/members", c.scoped(), c.HouseholdHandler.ListMembers)
		households.Post("/invites", c.scoped(), c.HouseholdHandler.CreateInvite)
		households.Get("/settings", c.scoped(), c.HouseholdHandler.GetSettings)
		households.Put("/settings", c.scoped(), c.HouseholdHandler.UpdateSettings)
	}
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.auth(), c.scoped())
	{
		pantry.Get("", c.PantryHandler.GetPantry)
		pantry.Post("", c.PantryHandler.AddPantryItem)
		pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
		pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.auth(), c.scoped())
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/search", c.RecipeHandler.SearchRecipes)
		recipes.Post("", c.RecipeHandler.AddRecipe)
		recipes.Post("/photo", c.RecipeHandler.UploadRecipePhoto)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) MealPlans() {
	meals := c.App.Group("/api/v1/meal-plans", c.auth(), c.scoped())
	{
		meals.Get("", c.MealPlanHandler.GetMealPlans)
		meals.Post("", c.MealPlanHandler.AddMealPlan)
		meals.Put("/:id", c.MealPlanHandler.UpdateMealPlan)
		meals.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
		meals.Get("/:id/validate", c.MealPlanHandler.ValidateCanCook)
		meals.Post("/:id/cook", c.MealPlanHandler.CookMeal)
	}
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping-list", c.auth(), c.scoped())
	{
		shopping.Get("", c.ShoppingHandler.GetShoppingList)
		shopping.Post("/regenerate", c.ShoppingHandler.Regenerate)
		shopping.Post("/items", c.ShoppingHandler.AddManualItem)
		shopping.Put("/items/:id", c.ShoppingHandler.UpdateManualItem)
		shopping.Delete("/items/:id", c.ShoppingHandler.DeleteManualItem)
		shopping.Post("/clear-checked", c.ShoppingHandler.ClearChecked)
		shopping.Post("/add-to-pantry", c.ShoppingHandler.AddCheckedToPantry)
	}
}

func (c *Config) Alerts() {
	alerts := c.App.Group("/api/v1/alerts", c.auth(), c.scoped())
	{
		alerts.Get("/expiring", c.AlertsHandler.GetExpiringItems)
		alerts.Get("/suggestions", c.AlertsHandler.GetRecipeSuggestions)
		alerts.Get("/ready-to-cook", c.AlertsHandler.GetReadyToCook)
		alerts.Get("/pantry-health", c.AlertsHandler.GetPantryHealth)
		alerts.Get("/dashboard", c.AlertsHandler.GetDashboard)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
