package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"pantryplanner/entities"

	"github.com/google/uuid"
)

type fakeLoader struct {
	pantryItems []entities.PantryItem
	recipes     []entities.Recipe
	mealPlans   []entities.MealPlan
	manualItems []entities.ManualShoppingItem

	loadCount int
	failNext  error
}

func (l *fakeLoader) PantryItems(ctx context.Context, householdID uuid.UUID) ([]entities.PantryItem, error) {
	l.loadCount++
	if l.failNext != nil {
		err := l.failNext
		l.failNext = nil
		return nil, err
	}
	return l.pantryItems, nil
}

func (l *fakeLoader) Recipes(ctx context.Context, householdID uuid.UUID) ([]entities.Recipe, error) {
	return l.recipes, nil
}

func (l *fakeLoader) MealPlans(ctx context.Context, householdID uuid.UUID) ([]entities.MealPlan, error) {
	return l.mealPlans, nil
}

func (l *fakeLoader) ManualShoppingItems(ctx context.Context, householdID uuid.UUID) ([]entities.ManualShoppingItem, error) {
	return l.manualItems, nil
}

func newTestManager(loader Loader) *Manager {
	m := NewManager(loader, NewCache(DefaultCacheConfig()))
	m.now = func() time.Time { return testToday }
	return m
}

func TestGetStateCachesSnapshot(t *testing.T) {
	loader := &fakeLoader{
		pantryItems: []entities.PantryItem{pantryItem("salt", "Spices", "g", 0)},
	}
	m := newTestManager(loader)
	householdID := uuid.New()

	first, err := m.GetState(context.Background(), householdID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.GetState(context.Background(), householdID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loader.loadCount != 1 {
		t.Errorf("loader hit %d times, want 1", loader.loadCount)
	}
	if first != second {
		t.Errorf("second read should return the cached snapshot")
	}
}

func TestInvalidateForcesRebuild(t *testing.T) {
	loader := &fakeLoader{}
	m := newTestManager(loader)
	householdID := uuid.New()

	if _, err := m.GetState(context.Background(), householdID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Invalidate(context.Background(), householdID)
	if _, err := m.GetState(context.Background(), householdID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loader.loadCount != 2 {
		t.Errorf("loader hit %d times, want 2", loader.loadCount)
	}
}

func TestInvalidationIsScopedPerHousehold(t *testing.T) {
	loader := &fakeLoader{}
	m := newTestManager(loader)
	a, b := uuid.New(), uuid.New()

	if _, err := m.GetState(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.GetState(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.Invalidate(context.Background(), a)

	if _, err := m.GetState(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loader.loadCount != 2 {
		t.Errorf("household b should still be cached, loader hit %d times", loader.loadCount)
	}
}

func TestUpdateAndInvalidateSkipsInvalidationOnFailure(t *testing.T) {
	loader := &fakeLoader{}
	m := newTestManager(loader)
	householdID := uuid.New()

	cached, err := m.GetState(context.Background(), householdID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mutationErr := errors.New("write failed")
	err = m.UpdateAndInvalidate(context.Background(), householdID, func(ctx context.Context) error {
		return mutationErr
	})
	if !errors.Is(err, mutationErr) {
		t.Fatalf("err = %v, want the mutation error", err)
	}

	after, err := m.GetState(context.Background(), householdID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after != cached {
		t.Errorf("failed mutation must not drop the cached snapshot")
	}
}

func TestUpdateAndInvalidateDropsSnapshotOnSuccess(t *testing.T) {
	loader := &fakeLoader{}
	m := newTestManager(loader)
	householdID := uuid.New()

	if _, err := m.GetState(context.Background(), householdID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := m.UpdateAndInvalidate(context.Background(), householdID, func(ctx context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.GetState(context.Background(), householdID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loader.loadCount != 2 {
		t.Errorf("loader hit %d times, want 2 after invalidation", loader.loadCount)
	}
}

func TestNilCacheRebuildsEveryRead(t *testing.T) {
	loader := &fakeLoader{}
	m := NewManager(loader, nil)
	m.now = func() time.Time { return testToday }
	householdID := uuid.New()

	for i := 0; i < 3; i++ {
		if _, err := m.GetState(context.Background(), householdID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if loader.loadCount != 3 {
		t.Errorf("loader hit %d times, want 3", loader.loadCount)
	}
}

func TestGetStatePropagatesLoaderError(t *testing.T) {
	loadErr := errors.New("db gone")
	loader := &fakeLoader{failNext: loadErr}
	m := newTestManager(loader)

	if _, err := m.GetState(context.Background(), uuid.New()); !errors.Is(err, loadErr) {
		t.Fatalf("err = %v, want loader error", err)
	}
}
