package domain

import (
	"errors"
)

var (
	MessageSuccessAddMealPlan    = "meal plan added successfully"
	MessageSuccessUpdateMealPlan = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan = "meal plan deleted successfully"
	MessageSuccessGetMealPlans   = "meal plans retrieved successfully"
	MessageSuccessCookMeal       = "meal cooked and pantry updated"
	MessageSuccessValidateCook   = "cook validation completed"

	MessageFailedAddMealPlan    = "failed to add meal plan"
	MessageFailedUpdateMealPlan = "failed to update meal plan"
	MessageFailedDeleteMealPlan = "failed to delete meal plan"
	MessageFailedGetMealPlans   = "failed to retrieve meal plans"
	MessageFailedCookMeal       = "failed to cook meal"

	ErrMealNotFound          = errors.New("meal not found")
	ErrInvalidMultiplier     = errors.New("serving multiplier must be greater than 0 and at most 10")
	ErrInsufficientStock     = errors.New("not enough ingredients to cook this meal")
	ErrMealAlreadyCooked     = errors.New("meal already cooked")
)

type (
	AddMealPlanRequest struct {
		Date              string  `json:"date" validate:"required"`
		RecipeID          string  `json:"recipe_id" validate:"required,uuid"`
		ServingMultiplier float64 `json:"serving_multiplier" validate:"omitempty,gt=0,lte=10"`
	}

	UpdateMealPlanRequest struct {
		Date              string   `json:"date" validate:"omitempty"`
		RecipeID          string   `json:"recipe_id" validate:"omitempty,uuid"`
		ServingMultiplier *float64 `json:"serving_multiplier" validate:"omitempty,gt=0,lte=10"`
		Cooked            *bool    `json:"cooked"`
	}

	// MissingIngredient details one shortfall found by cook validation.
	MissingIngredient struct {
		Ingredient string  `json:"ingredient"`
		Unit       string  `json:"unit"`
		Needed     float64 `json:"needed"`
		Available  float64 `json:"available"`
		Short      float64 `json:"short"`
	}

	CookValidation struct {
		CanCook    bool                `json:"can_cook"`
		Missing    []MissingIngredient `json:"missing"`
		RecipeName string              `json:"recipe_name,omitempty"`
	}
)
