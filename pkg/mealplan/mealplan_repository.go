package mealplan

import (
	"context"
	"errors"

	"pantryplanner/domain"
	"pantryplanner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		AddMealPlan(ctx context.Context, meal *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id uuid.UUID) (*entities.MealPlan, error)
		UpdateMealPlan(ctx context.Context, meal *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, id uuid.UUID) error

		// CookMeal depletes pantry stock for every ingredient of the meal's
		// recipe and marks the meal cooked, all inside one transaction so a
		// mid-sequence failure cannot leave quantities inconsistent with the
		// cooked flag.
		CookMeal(ctx context.Context, householdID, mealID uuid.UUID) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) AddMealPlan(ctx context.Context, meal *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id uuid.UUID) (*entities.MealPlan, error) {
	var meal entities.MealPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, meal *entities.MealPlan) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealPlan{}).Error
}

func (r *mealPlanRepository) CookMeal(ctx context.Context, householdID, mealID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal entities.MealPlan
		err := tx.Where("id = ? AND household_id = ?", mealID, householdID).First(&meal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrMealNotFound
			}
			return err
		}

		if meal.Cooked {
			return domain.ErrMealAlreadyCooked
		}

		var recipe entities.Recipe
		err = tx.Preload("Ingredients").Where("id = ?", meal.RecipeID).First(&recipe).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		for _, ing := range recipe.Ingredients {
			needed := ing.ScaledQuantity(meal.ServingMultiplier)

			var item entities.PantryItem
			err = tx.Preload("Locations").
				Where("household_id = ? AND lower(name) = lower(?) AND unit = ?", householdID, ing.Name, ing.Unit).
				First(&item).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			for _, debit := range planDepletion(item.Locations, needed) {
				err = tx.Model(&entities.PantryLocation{}).
					Where("id = ?", debit.LocationID).
					Update("quantity", debit.NewQuantity).Error
				if err != nil {
					return err
				}
			}
		}

		return tx.Model(&entities.MealPlan{}).
			Where("id = ?", meal.ID).
			Update("cooked", true).Error
	})
}
