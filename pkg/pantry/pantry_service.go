package pantry

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
	PantryService interface {
		GetPantry(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error)
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, householdID uuid.UUID) (uuid.UUID, *state.HouseholdState, error)
		UpdatePantryItem(ctx context.Context, id uuid.UUID, req domain.UpdatePantryItemRequest, householdID uuid.UUID) (*state.HouseholdState, error)
		DeletePantryItem(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*state.HouseholdState, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
		stateManager     *state.Manager
	}
)

func NewPantryService(pantryRepository PantryRepository, stateManager *state.Manager) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		stateManager:     stateManager,
	}
}

func (s *pantryService) GetPantry(ctx context.Context, householdID uuid.UUID) (*state.HouseholdState, error) {
	return s.stateManager.GetState(ctx, householdID)
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, householdID uuid.UUID) (uuid.UUID, *state.HouseholdState, error) {
	if len(req.Locations) == 0 {
		return uuid.Nil, nil, domain.ErrNoLocations
	}

	locations, err := buildLocations(req.Locations)
	if err != nil {
		return uuid.Nil, nil, err
	}

	item := &entities.PantryItem{
		ID:           uuid.New(),
		HouseholdID:  householdID,
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
		Locations:    locations,
	}

	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.pantryRepository.AddPantryItem(ctx, item)
	})
	if err != nil {
		return uuid.Nil, nil, err
	}

	fresh, err := s.stateManager.GetState(ctx, householdID)
	return item.ID, fresh, err
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id uuid.UUID, req domain.UpdatePantryItemRequest, householdID uuid.UUID) (*state.HouseholdState, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if item.HouseholdID != householdID {
		return nil, domain.ErrPantryItemNotFound
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.MinThreshold != nil {
		item.MinThreshold = *req.MinThreshold
	}

	var locations []entities.PantryLocation
	if req.Locations != nil {
		locations, err = buildLocations(req.Locations)
		if err != nil {
			return nil, err
		}
	}

	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
			return err
		}
		if req.Locations != nil {
			return s.pantryRepository.ReplaceLocations(ctx, item.ID, locations)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.stateManager.GetState(ctx, householdID)
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id uuid.UUID, householdID uuid.UUID) (*state.HouseholdState, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if item.HouseholdID != householdID {
		return nil, domain.ErrPantryItemNotFound
	}

	err = s.stateManager.UpdateAndInvalidate(ctx, householdID, func(ctx context.Context) error {
		return s.pantryRepository.DeletePantryItem(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return s.stateManager.GetState(ctx, householdID)
}

func buildLocations(reqs []domain.PantryLocationRequest) ([]entities.PantryLocation, error) {
	locations := make([]entities.PantryLocation, 0, len(reqs))
	for _, loc := range reqs {
		if loc.Quantity < 0 {
			return nil, domain.ErrInvalidQuantity
		}

		var expiration *time.Time
		if loc.ExpirationDate != "" {
			parsed, err := time.Parse("2006-01-02", loc.ExpirationDate)
			if err != nil {
				return nil, domain.ErrInvalidDate
			}
			expiration = &parsed
		}

		locations = append(locations, entities.PantryLocation{
			ID:             uuid.New(),
			Location:       loc.Location,
			Quantity:       loc.Quantity,
			ExpirationDate: expiration,
		})
	}
	return locations, nil
}
