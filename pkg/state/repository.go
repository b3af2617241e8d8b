package state

import (
	"context"
	"time"

	"pantryplanner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormLoader struct {
	db *gorm.DB
}

// NewLoader returns a Loader backed by the relational store.
func NewLoader(db *gorm.DB) Loader {
	return &gormLoader{db: db}
}

func (l *gormLoader) PantryItems(ctx context.Context, householdID uuid.UUID) ([]entities.PantryItem, error) {
	var items []entities.PantryItem
	err := l.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Preload("Locations").
		Order("name asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (l *gormLoader) Recipes(ctx context.Context, householdID uuid.UUID) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	err := l.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Preload("Ingredients").
		Order("name asc").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (l *gormLoader) MealPlans(ctx context.Context, householdID uuid.UUID) ([]entities.MealPlan, error) {
	var plans []entities.MealPlan
	today := time.Now().Format("2006-01-02")
	err := l.db.WithContext(ctx).
		Where("household_id = ? AND date >= ?", householdID, today).
		Order("date asc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (l *gormLoader) ManualShoppingItems(ctx context.Context, householdID uuid.UUID) ([]entities.ManualShoppingItem, error) {
	var items []entities.ManualShoppingItem
	err := l.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
