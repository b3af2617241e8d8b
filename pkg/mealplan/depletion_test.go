package mealplan

import (
	"testing"
	"time"

	"pantryplanner/entities"

	"github.com/google/uuid"
)

func datePtr(t time.Time) *time.Time { return &t }

func location(qty float64, expires *time.Time) entities.PantryLocation {
	return entities.PantryLocation{
		ID:             uuid.New(),
		Quantity:       qty,
		ExpirationDate: expires,
	}
}

func TestPlanDepletionConsumesSoonestExpiringFirst(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	older := location(1, datePtr(jan))
	newer := location(3, datePtr(feb))
	locations := []entities.PantryLocation{newer, older}

	debits := planDepletion(locations, 2)

	if len(debits) != 2 {
		t.Fatalf("got %d debits, want 2", len(debits))
	}
	if debits[0].LocationID != older.ID || debits[0].NewQuantity != 0 {
		t.Errorf("oldest batch should be drained first: %+v", debits[0])
	}
	if debits[1].LocationID != newer.ID || debits[1].NewQuantity != 2 {
		t.Errorf("remainder should come from the newer batch: %+v", debits[1])
	}
}

func TestPlanDepletionStopsWhenCovered(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := location(5, datePtr(jan))
	second := location(5, nil)

	debits := planDepletion([]entities.PantryLocation{first, second}, 3)

	if len(debits) != 1 {
		t.Fatalf("got %d debits, want 1", len(debits))
	}
	if debits[0].LocationID != first.ID || debits[0].NewQuantity != 2 {
		t.Errorf("debit = %+v, want first batch at 2", debits[0])
	}
}

func TestPlanDepletionNilDatesSortLast(t *testing.T) {
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	undated := location(4, nil)
	dated := location(1, datePtr(mar))

	debits := planDepletion([]entities.PantryLocation{undated, dated}, 2)

	if len(debits) != 2 {
		t.Fatalf("got %d debits, want 2", len(debits))
	}
	if debits[0].LocationID != dated.ID {
		t.Errorf("dated batch should drain before the undated one")
	}
	if debits[1].LocationID != undated.ID || debits[1].NewQuantity != 3 {
		t.Errorf("undated batch debit = %+v, want quantity 3", debits[1])
	}
}

func TestPlanDepletionClampsWhenStockShort(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	only := location(2, datePtr(jan))

	debits := planDepletion([]entities.PantryLocation{only}, 10)

	if len(debits) != 1 {
		t.Fatalf("got %d debits, want 1", len(debits))
	}
	if debits[0].NewQuantity != 0 {
		t.Errorf("quantity must clamp at zero, got %v", debits[0].NewQuantity)
	}
}

func TestPlanDepletionZeroQuantityNoDebits(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	debits := planDepletion([]entities.PantryLocation{location(2, datePtr(jan))}, 0)

	if len(debits) != 0 {
		t.Errorf("got %d debits, want none", len(debits))
	}
}
