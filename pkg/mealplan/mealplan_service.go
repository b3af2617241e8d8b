package mealplan

import (
	"context"
	"errors"
	"time"

	"pantryplanner/domain"
	"pantryplanner/entities"
	"pantryplanner/pkg/state"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		GetMealPlans(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error)
		AddMealPlan(ctx context.Context, req domain.AddMealPlanRequest, householdID uuid.UUID) (uuid.UUID, *state.HouseholdState, error)
		UpdateMealPlan(ctx context.Context, id uuid.UUID, req domain.UpdateMealPlanRequest, householdID uuid.UUID) (*state.HouseholdState, error)
		DeleteMealPlan(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*state.HouseholdState, error)
		ValidateCanCook(ctx context.Context, mealID uuid.UUID, householdID uuid.UUID) (domain.CookValidation, error)
		CookMeal(ctx context.Context, mealID uuid.UUID, force bool, householdID uuid.UUID) (domain.CookValidation, *state.HouseholdState, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		stateManager       *state.Manager
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, stateManager *state.Manager) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		stateManager:       stateManager,
	}
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error) {
	return s.stateManager.GetState(ctx, householdID)
}

func (s *mealPlanService) AddMealPlan(ctx context.Context, req domain.AddMealPlanRequest, householdID uuid.UUID) (uuid.UUID, *state.HouseholdState, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return uuid.Nil, nil, domain.ErrInvalidDate
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return uuid.Nil, nil, domain.ErrParseUUID
	}

	multiplier := req.ServingMultiplier
	if multiplier == 0 {
		multiplier = 1
	}
	if multiplier <= 0 || multiplier > 10 {
		return uuid.Nil, nil, domain.ErrInvalidMultiplier
	}

	meal := &entities.MealPlan{
		ID:                uuid.New(),
		HouseholdID:       householdID,
		RecipeID:          recipeID,
		Date:              date,
		ServingMultiplier: multiplier,
	}

	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.mealPlanRepository.AddMealPlan(ctx, meal)
	})
	if err != nil {
		return uuid.Nil, nil, err
	}

	fresh, err := s.stateManager.GetState(ctx, householdID)
	return meal.ID, fresh, err
}

func (s *mealPlanService) UpdateMealPlan(ctx context.Context, id uuid.UUID, req domain.UpdateMealPlanRequest, householdID uuid.UUID) (*state.HouseholdState, error) {
	meal, err := s.ownedMeal(ctx, id, householdID)
	if err != nil {
		return nil, err
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		meal.Date = date
	}
	if req.RecipeID != "" {
		recipeID, err := uuid.Parse(req.RecipeID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		meal.RecipeID = recipeID
	}
	if req.ServingMultiplier != nil {
		if *req.ServingMultiplier <= 0 || *req.ServingMultiplier > 10 {
			return nil, domain.ErrInvalidMultiplier
		}
		meal.ServingMultiplier = *req.ServingMultiplier
	}
	if req.Cooked != nil {
		meal.Cooked = *req.Cooked
	}

	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.mealPlanRepository.UpdateMealPlan(ctx, meal)
	})
	if err != nil {
		return nil, err
	}

	return s.stateManager.GetState(ctx, householdID)
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*state.HouseholdState, error) {
	if _, err := s.ownedMeal(ctx, id, householdID); err != nil {
		return nil, err
	}

	err := s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.mealPlanRepository.DeleteMealPlan(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return s.stateManager.GetState(ctx, householdID)
}

func (s *mealPlanService) ValidateCanCook(ctx context.Context, mealID uuid.UUID, householdID uuid.UUID) (domain.CookValidation, error) {
	snapshot, err := s.stateManager.GetState(ctx, householdID)
	if err != nil {
		return domain.CookValidation{}, err
	}

	return snapshot.ValidateCanCook(mealID)
}

// CookMeal validates pantry coverage first (unless forced), then depletes
// pantry locations and marks the meal cooked in one transaction. On an
// insufficient-stock failure the returned validation carries the per
// ingredient shortfall.
func (s *mealPlanService) CookMeal(ctx context.Context, mealID uuid.UUID, force bool, householdID uuid.UUID) (domain.CookValidation, *state.HouseholdState, error) {
	snapshot, err := s.stateManager.GetState(ctx, householdID)
	if err != nil {
		return domain.CookValidation{}, nil, err
	}

	validation, err := snapshot.ValidateCanCook(mealID)
	if err != nil {
		return domain.CookValidation{}, nil, err
	}

	if !force && !validation.CanCook {
		return validation, nil, domain.ErrInsufficientStock
	}

	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.mealPlanRepository.CookMeal(ctx, householdID, mealID)
	})
	if err != nil {
		return validation, nil, err
	}

	fresh, err := s.stateManager.GetState(ctx, householdID)
	return validation, fresh, err
}

func (s *mealPlanService) ownedMeal(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*entities.MealPlan, error) {
	meal, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}

	if meal.HouseholdID != householdID {
		return nil, domain.ErrMealNotFound
	}

	return meal, nil
}
