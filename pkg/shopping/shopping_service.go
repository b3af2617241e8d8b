package shopping

import (
	"context"
	"errors"
	"time"

	"pantryplanner/domain"
	"pantryplanner/entities"
	"pantryplanner/pkg/pantry"
	"pantryplanner/pkg/state"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		GetShoppingList(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error)
		Regenerate(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error)
		AddManualItem(ctx context.Context, req domain.AddManualItemRequest, householdID uuid.UUID) (uuid.UUID, *state.HouseholdState, error)
		UpdateManualItem(ctx context.Context, id uuid.UUID, req domain.UpdateManualItemRequest, householdID, userID uuid.UUID) (*state.HouseholdState, error)
		DeleteManualItem(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*state.HouseholdState, error)
		ClearChecked(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error)
		AddCheckedToPantry(ctx context.Context, householdID uuid.UUID) (int, *state.HouseholdState, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		pantryRepository   pantry.PantryRepository
		stateManager       *state.Manager
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, pantryRepository pantry.PantryRepository, stateManager *state.Manager) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		pantryRepository:   pantryRepository,
		stateManager:       stateManager,
	}
}

func (s *shoppingService) GetShoppingList(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error) {
	return s.stateManager.GetState(ctx, householdID)
}

// Regenerate drops the cached snapshot so the list is rebuilt from scratch.
func (s *shoppingService) Regenerate(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error) {
	s.stateManager.Invalidate(ctx, householdID)
	return s.stateManager.GetState(ctx, householdID)
}

func (s *shoppingService) AddManualItem(ctx context.Context, req domain.AddManualItemRequest, householdID uuid.UUID) (uuid.UUID, *state.HouseholdState, error) {
	category := req.Category
	if category == "" {
		category = "Other"
	}

	item := &entities.ManualShoppingItem{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Category:    category,
	}

	err := s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.shoppingRepository.AddManualItem(ctx, item)
	})
	if err != nil {
		return uuid.Nil, nil, err
	}

	fresh, err := s.stateManager.GetState(ctx, householdID)
	return item.ID, fresh, err
}

func (s *shoppingService) UpdateManualItem(ctx context.Context, id uuid.UUID, req domain.UpdateManualItemRequest, householdID, userID uuid.UUID) (*state.HouseholdState, error) {
	item, err := s.ownedItem(ctx, id, householdID)
	if err != nil {
		return nil, err
	}

	if req.Checked != nil {
		item.Checked = *req.Checked
		if *req.Checked {
			now := time.Now()
			item.CheckedAt = &now
			item.CheckedBy = &userID
		} else {
			item.CheckedAt = nil
			item.CheckedBy = nil
		}
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}

	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.shoppingRepository.UpdateManualItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	return s.stateManager.GetState(ctx, householdID)
}

func (s *shoppingService) DeleteManualItem(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*state.HouseholdState, error) {
	if _, err := s.ownedItem(ctx, id, householdID); err != nil {
		return nil, err
	}

	err := s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.shoppingRepository.DeleteManualItem(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return s.stateManager.GetState(ctx, householdID)
}

func (s *shoppingService) ClearChecked(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error) {
	err := s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.shoppingRepository.DeleteCheckedItems(ctx, householdID)
	})
	if err != nil {
		return nil, err
	}

	return s.stateManager.GetState(ctx, householdID)
}

// AddCheckedToPantry merges every checked shopping entry into the pantry:
// existing items get the quantity added to their first location, unknown items
// become new pantry items with a zero threshold.
func (s *shoppingService) AddCheckedToPantry(ctx context.Context, householdID uuid.UUID) (int, *state.HouseholdState, error) {
	snapshot, err := s.stateManager.GetState(ctx, householdID)
	if err != nil {
		return 0, nil, err
	}

	added := 0
	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		for _, entry := range snapshot.ShoppingList {
			if !entry.Checked {
				continue
			}

			existing, err := s.pantryRepository.GetPantryItemByName(ctx, householdID, entry.Name, entry.Unit)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			if existing != nil {
				if len(existing.Locations) > 0 {
					loc := existing.Locations[0]
					if err := s.pantryRepository.UpdateLocationQuantity(ctx, loc.ID, loc.Quantity+entry.Quantity); err != nil {
						return err
					}
				} else {
					location := &entities.PantryLocation{
						ID:           uuid.New(),
						PantryItemID: existing.ID,
						Location:     "Pantry",
						Quantity:     entry.Quantity,
					}
					if err := s.pantryRepository.AddLocation(ctx, location); err != nil {
						return err
					}
				}
			} else {
				item := &entities.PantryItem{
					ID:          uuid.New(),
					HouseholdID: householdID,
					Name:        entry.Name,
					Category:    entry.Category,
					Unit:        entry.Unit,
					Locations: []entities.PantryLocation{{
						ID:       uuid.New(),
						Location: "Pantry",
						Quantity: entry.Quantity,
					}},
				}
				if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
					return err
				}
			}

			added++
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	fresh, err := s.stateManager.GetState(ctx, householdID)
	return added, fresh, err
}

func (s *shoppingService) ownedItem(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*entities.ManualShoppingItem, error) {
	item, err := s.shoppingRepository.GetManualItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrManualItemNotFound
		}
		return nil, err
	}

	if item.HouseholdID != householdID {
		return nil, domain.ErrManualItemNotFound
	}

	return item, nil
}
