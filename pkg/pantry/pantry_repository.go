package pantry

import (
	"context"

	"pantryplanner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddPantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItemByID(ctx context.Context, id uuid.UUID) (*entities.PantryItem, error)
		GetPantryItemByName(ctx context.Context, householdID uuid.UUID, name, unit string) (*entities.PantryItem, error)
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		ReplaceLocations(ctx context.Context, itemID uuid.UUID, locations []entities.PantryLocation) error
		AddLocation(ctx context.Context, location *entities.PantryLocation) error
		UpdateLocationQuantity(ctx context.Context, locationID uuid.UUID, quantity float64) error
		DeletePantryItem(ctx context.Context, id uuid.UUID) error
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, id uuid.UUID) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Preload("Locations").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) GetPantryItemByName(ctx context.Context, householdID uuid.UUID, name, unit string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	err := r.db.WithContext(ctx).Preload("Locations").
		Where("household_id = ? AND lower(name) = lower(?) AND unit = ?", householdID, name, unit).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Omit("Locations").Save(item).Error
}

func (r *pantryRepository) ReplaceLocations(ctx context.Context, itemID uuid.UUID, locations []entities.PantryLocation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pantry_item_id = ?", itemID).Delete(&entities.PantryLocation{}).Error; err != nil {
			return err
		}
		for i := range locations {
			locations[i].PantryItemID = itemID
			if err := tx.Create(&locations[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *pantryRepository) AddLocation(ctx context.Context, location *entities.PantryLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *pantryRepository) UpdateLocationQuantity(ctx context.Context, locationID uuid.UUID, quantity float64) error {
	return r.db.WithContext(ctx).Model(&entities.PantryLocation{}).
		Where("id = ?", locationID).
		Update("quantity", quantity).Error
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pantry_item_id = ?", id).Delete(&entities.PantryLocation{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.PantryItem{}).Error
	})
}
