package config

import (
	"os"
	"time"

	"pantryplanner/internal/api/handlers"
	"pantryplanner/internal/api/routes"
	"pantryplanner/internal/middleware"
	"pantryplanner/internal/utils"
	"pantryplanner/internal/utils/storage"
	"pantryplanner/pkg/household"
	"pantryplanner/pkg/jwt"
	"pantryplanner/pkg/mealplan"
	"pantryplanner/pkg/pantry"
	"pantryplanner/pkg/recipe"
	"pantryplanner/pkg/shopping"
	"pantryplanner/pkg/state"
	"pantryplanner/pkg/user"

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

	// derived state engine
	stateLoader := state.NewLoader(db)
	stateCache := state.NewCache(state.DefaultCacheConfig())
	stateManager := state.NewManager(stateLoader, stateCache)

	// Repository
	userRepository := user.NewUserRepository(db)
	householdRepository := household.NewHouseholdRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	householdService := household.NewHouseholdService(householdRepository)
	userService := user.NewUserService(userRepository, householdService, jwtService)
	pantryService := pantry.NewPantryService(pantryRepository, stateManager)
	recipeService := recipe.NewRecipeService(recipeRepository, stateManager, s3)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, stateManager)
	shoppingService := shopping.NewShoppingService(shoppingRepository, pantryRepository, stateManager)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	householdHandler := handlers.NewHouseholdHandler(householdService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	alertsHandler := handlers.NewAlertsHandler(stateManager)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		HouseholdHandler: householdHandler,
		PantryHandler:    pantryHandler,
		RecipeHandler:    recipeHandler,
		MealPlanHandler:  mealPlanHandler,
		ShoppingHandler:  shoppingHandler,
		AlertsHandler:    alertsHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
		HouseholdService: householdService,
	}
	routesConfig.Setup()
	return app, nil
}
