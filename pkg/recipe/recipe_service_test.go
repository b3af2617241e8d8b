package recipe

import (
	"context"
	"testing"

	"pantryplanner/domain"
	"pantryplanner/entities"
	"pantryplanner/pkg/state"

	"github.com/google/uuid"
)

type stubRepository struct {
	RecipeRepository
}

type stubLoader struct{}

func (stubLoader) PantryItems(ctx context.Context, householdID uuid.UUID) ([]entities.PantryItem, error) {
	return nil, nil
}

func (stubLoader) Recipes(ctx context.Context, householdID uuid.UUID) ([]entities.Recipe, error) {
	return nil, nil
}

func (stubLoader) MealPlans(ctx context.Context, householdID uuid.UUID) ([]entities.MealPlan, error) {
	return nil, nil
}

func (stubLoader) ManualShoppingItems(ctx context.Context, householdID uuid.UUID) ([]entities.ManualShoppingItem, error) {
	return nil, nil
}

func TestAddRecipeRequiresIngredients(t *testing.T) {
	svc := NewRecipeService(stubRepository{}, state.NewManager(stubLoader{}, nil), nil)

	req := domain.AddRecipeRequest{Name: "Toast", Instructions: "Toast the bread."}
	_, _, err := svc.AddRecipe(context.Background(), req, uuid.New())
	if err != domain.ErrNoIngredients {
		t.Fatalf("err = %v, want ErrNoIngredients", err)
	}
}
