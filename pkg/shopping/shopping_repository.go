package shopping

import (
	"context"

	"pantryplanner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AddManualItem(ctx context.Context, item *entities.ManualShoppingItem) error
		GetManualItemByID(ctx context.Context, id uuid.UUID) (*entities.ManualShoppingItem, error)
		UpdateManualItem(ctx context.Context, item *entities.ManualShoppingItem) error
		DeleteManualItem(ctx context.Context, id uuid.UUID) error
		DeleteCheckedItems(ctx context.Context, householdID uuid.UUID) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) AddManualItem(ctx context.Context, item *entities.ManualShoppingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) GetManualItemByID(ctx context.Context, id uuid.UUID) (*entities.ManualShoppingItem, error) {
	var item entities.ManualShoppingItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) UpdateManualItem(ctx context.Context, item *entities.ManualShoppingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteManualItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ManualShoppingItem{}).Error
}

func (r *shoppingRepository) DeleteCheckedItems(ctx context.Context, householdID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("household_id = ? AND checked = ?", householdID, true).
		Delete(&entities.ManualShoppingItem{}).Error
}
