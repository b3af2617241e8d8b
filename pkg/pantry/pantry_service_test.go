package pantry

import (
	"context"
	"testing"

	"pantryplanner/domain"
	"pantryplanner/entities"
	"pantryplanner/pkg/state"

	"github.com/google/uuid"
)

type stubRepository struct {
	PantryRepository
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

func TestAddPantryItemRequiresLocations(t *testing.T) {
	svc := NewPantryService(stubRepository{}, state.NewManager(stubLoader{}, nil))

	req := domain.AddPantryItemRequest{Name: "rice", Category: "Grains", Unit: "kg"}
	_, _, err := svc.AddPantryItem(context.Background(), req, uuid.New())
	if err != domain.ErrNoLocations {
		t.Fatalf("err = %v, want ErrNoLocations", err)
	}
}

func TestBuildLocationsRejectsNegativeQuantity(t *testing.T) {
	_, err := buildLocations([]domain.PantryLocationRequest{
		{Location: "Pantry", Quantity: -1},
	})
	if err != domain.ErrInvalidQuantity {
		t.Fatalf("err = %v, want ErrInvalidQuantity", err)
	}
}

func TestBuildLocationsRejectsMalformedDate(t *testing.T) {
	_, err := buildLocations([]domain.PantryLocationRequest{
		{Location: "Pantry", Quantity: 1, ExpirationDate: "next tuesday"},
	})
	if err != domain.ErrInvalidDate {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}
