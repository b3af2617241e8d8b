package state

import (
	"context"
	"log"
	"time"

	"pantryplanner/entities"

	"github.com/google/uuid"
)

type (
	// Loader fetches the raw entity set for one household from the source of
	// truth. Every rebuild loads fresh, owned copies.
	Loader interface {
		PantryItems(ctx context.Context, householdID uuid.UUID) ([]entities.PantryItem, error)
		Recipes(ctx context.Context, householdID uuid.UUID) ([]entities.Recipe, error)
		MealPlans(ctx context.Context, householdID uuid.UUID) ([]entities.MealPlan, error)
		ManualShoppingItems(ctx context.Context, householdID uuid.UUID) ([]entities.ManualShoppingItem, error)
	}

	// Manager mediates all access to derived household state: reads go
	// through the cache, writes go through UpdateAndInvalidate so the next
	// read is guaranteed to rebuild from the source of truth.
	Manager struct {
		loader Loader
		cache  Cache
		now    func() time.Time
	}
)

// NewManager wires the loader and cache together. A nil cache disables
// caching; every read then rebuilds.
func NewManager(loader Loader, cache Cache) *Manager {
	return &Manager{
		loader: loader,
		cache:  cache,
		now:    time.Now,
	}
}

// GetState returns the household snapshot, rebuilding it on a cache miss.
func (m *Manager) GetState(ctx context.Context, householdID uuid.UUID) (*HouseholdState, error) {
	if m.cache != nil {
		if snapshot, ok := m.cache.Get(ctx, householdID); ok {
			return snapshot, nil
		}
	}

	snapshot, err := m.rebuild(ctx, householdID)
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		m.cache.Set(ctx, householdID, snapshot)
	}

	return snapshot, nil
}

// Invalidate drops the household's cached snapshot. The next GetState call
// rebuilds from the source of truth.
func (m *Manager) Invalidate(ctx context.Context, householdID uuid.UUID) {
	if m.cache == nil {
		return
	}
	m.cache.Delete(ctx, householdID)
	log.Printf("state: cache invalidated for household %s", householdID)
}

// UpdateAndInvalidate runs the mutation against the source of truth, then
// invalidates the household's snapshot. A failed mutation never invalidates:
// the cache must only be dropped after a committed write.
func (m *Manager) UpdateAndInvalidate(ctx context.Context, householdID uuid.UUID, mutation func(ctx context.Context) error) error {
	if err := mutation(ctx); err != nil {
		return err
	}

	m.Invalidate(ctx, householdID)
	return nil
}

func (m *Manager) rebuild(ctx context.Context, householdID uuid.UUID) (*HouseholdState, error) {
	pantryItems, err := m.loader.PantryItems(ctx, householdID)
	if err != nil {
		return nil, err
	}

	recipes, err := m.loader.Recipes(ctx, householdID)
	if err != nil {
		return nil, err
	}

	mealPlans, err := m.loader.MealPlans(ctx, householdID)
	if err != nil {
		return nil, err
	}

	manualItems, err := m.loader.ManualShoppingItems(ctx, householdID)
	if err != nil {
		return nil, err
	}

	log.Printf("state: rebuilding snapshot for household %s", householdID)
	return Derive(householdID, pantryItems, recipes, mealPlans, manualItems, m.now()), nil
}
