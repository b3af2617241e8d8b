package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAddRecipe    = "recipe added successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessGetRecipe    = "recipe retrieved successfully"
	MessageSuccessUploadPhoto  = "recipe photo uploaded successfully"

	MessageFailedAddRecipe    = "failed to add recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedGetRecipe    = "failed to retrieve recipe"
	MessageFailedUploadPhoto  = "failed to upload recipe photo"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNoIngredients      = errors.New("at least one ingredient is required")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	RecipeIngredientRequest struct {
		Name     string  `json:"name" validate:"required,min=1,max=100"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Unit     string  `json:"unit" validate:"required,min=1,max=20"`
	}

	AddRecipeRequest struct {
		Name         string                    `json:"name" validate:"required,min=1,max=200"`
		Tags         []string                  `json:"tags"`
		Instructions string                    `json:"instructions"`
		Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	UpdateRecipeRequest struct {
		Name         string                    `json:"name" validate:"omitempty,min=1,max=200"`
		Tags         []string                  `json:"tags"`
		Instructions *string                   `json:"instructions"`
		Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	UploadRecipePhotoRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Photo    *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	RecipeSearchRequest struct {
		Query          string
		Tags           []string
		ReadyOnly      bool
		HasIngredients []string
	}
)
