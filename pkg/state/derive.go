package state

import (
	"sort"
	"strings"
	"time"

	"pantryplanner/domain"
	"pantryplanner/entities"

	"github.com/google/uuid"
)

// Derive builds a complete snapshot from the raw entity set. It is a pure
// function of its inputs and the "today" clock reading: no I/O, no side
// effects, identical inputs produce identical output.
func Derive(
	householdID uuid.UUID,
	pantryItems []entities.PantryItem,
	recipes []entities.Recipe,
	mealPlans []entities.MealPlan,
	manualItems []entities.ManualShoppingItem,
	today time.Time,
) *HouseholdState {
	s := &HouseholdState{
		HouseholdID: householdID,
		PantryItems: pantryItems,
		Recipes:     recipes,
		MealPlans:   mealPlans,
		ManualItems: manualItems,
		today:       dateOnly(today),
	}

	s.ReservedIngredients = s.calculateReserved()
	s.ShoppingList = s.calculateShoppingList()
	s.ReadyRecipeIDs = s.calculateReadyRecipes()
	s.LastUpdated = time.Now()

	return s
}

// calculateReserved accumulates ingredient quantities earmarked by active
// meals. Cooked and past-dated meals contribute nothing; duplicates across
// meals add up.
func (s *HouseholdState) calculateReserved() map[string]float64 {
	reserved := make(map[string]float64)

	for i := range s.MealPlans {
		meal := &s.MealPlans[i]
		if !meal.Active(s.today) {
			continue
		}

		recipe := s.FindRecipe(meal.RecipeID)
		if recipe == nil {
			continue
		}

		for _, ing := range recipe.Ingredients {
			key := IngredientKey(ing.Name, ing.Unit)
			reserved[key] += ing.ScaledQuantity(meal.ServingMultiplier)
		}
	}

	return reserved
}

// calculateShoppingList consolidates meal shortfalls, below-threshold restocks
// and persisted manual entries into one list. Meal-driven shortfalls absorb
// threshold shortfalls for the same name+unit instead of duplicating a line;
// manual entries are never deduplicated against auto entries.
func (s *HouseholdState) calculateShoppingList() []domain.ShoppingEntry {
	shopping := make([]domain.ShoppingEntry, 0)
	addedKeys := make(map[string]bool)

	// Part 1: shortfalls against reserved quantities. Map iteration order is
	// random, so the keys are walked sorted to keep rebuilds byte-identical.
	reservedKeys := make([]string, 0, len(s.ReservedIngredients))
	for key := range s.ReservedIngredients {
		reservedKeys = append(reservedKeys, key)
	}
	sort.Strings(reservedKeys)

	for _, key := range reservedKeys {
		needed := s.ReservedIngredients[key]
		name, unit, ok := splitKey(key)
		if !ok {
			continue
		}

		available := 0.0
		category := "Other"
		if item := s.findPantryItem(name, unit); item != nil {
			available = item.TotalQuantity()
			category = item.Category
		}

		if available < needed {
			shopping = append(shopping, domain.ShoppingEntry{
				Name:     titleCaser.String(name),
				Quantity: round2(needed - available),
				Unit:     unit,
				Category: category,
				Source:   domain.SourceMeals,
			})
			addedKeys[key] = true
		}
	}

	// Part 2: below-threshold restocks. An item already covered by part 1
	// only has its quantity raised, never a second line; the source tag stays
	// with the first writer.
	for i := range s.PantryItems {
		item := &s.PantryItems[i]
		key := IngredientKey(item.Name, item.Unit)

		if addedKeys[key] {
			for j := range shopping {
				if strings.EqualFold(shopping[j].Name, item.Name) && shopping[j].Unit == item.Unit {
					shortfall := item.MinThreshold - item.TotalQuantity()
					if shortfall > 0 && round2(shortfall) > shopping[j].Quantity {
						shopping[j].Quantity = round2(shortfall)
					}
				}
			}
			continue
		}

		if item.TotalQuantity() < item.MinThreshold {
			shopping = append(shopping, domain.ShoppingEntry{
				Name:     titleCaser.String(item.Name),
				Quantity: round2(item.MinThreshold - item.TotalQuantity()),
				Unit:     item.Unit,
				Category: item.Category,
				Source:   domain.SourceThreshold,
			})
		}
	}

	// Part 3: manual entries, verbatim.
	for i := range s.ManualItems {
		item := &s.ManualItems[i]
		id := item.ID
		shopping = append(shopping, domain.ShoppingEntry{
			ID:        &id,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Category:  item.Category,
			Source:    domain.SourceManual,
			Checked:   item.Checked,
			CheckedAt: item.CheckedAt,
			CheckedBy: item.CheckedBy,
		})
	}

	sort.SliceStable(shopping, func(i, j int) bool {
		if shopping[i].Category != shopping[j].Category {
			return shopping[i].Category < shopping[j].Category
		}
		if shopping[i].Name != shopping[j].Name {
			return shopping[i].Name < shopping[j].Name
		}
		return shopping[i].Unit < shopping[j].Unit
	})

	return shopping
}

// calculateReadyRecipes returns recipes whose full ingredient list is covered
// by pantry stock net of reservations. Stock earmarked for planned meals is
// treated as unavailable so two recipes cannot both claim the same scarce
// ingredient.
func (s *HouseholdState) calculateReadyRecipes() []uuid.UUID {
	ready := make([]uuid.UUID, 0)

	for i := range s.Recipes {
		recipe := &s.Recipes[i]
		canMake := true

		for _, ing := range recipe.Ingredients {
			available := 0.0
			if item := s.findPantryItem(ing.Name, ing.Unit); item != nil {
				available = item.TotalQuantity()
			}

			reserved := s.ReservedIngredients[IngredientKey(ing.Name, ing.Unit)]

			if available-reserved < ing.Quantity {
				canMake = false
				break
			}
		}

		if canMake {
			ready = append(ready, recipe.ID)
		}
	}

	return ready
}

func splitKey(key string) (name, unit string, ok bool) {
	idx := strings.LastIndex(key, "|")
	if idx < 0 {
		return "", "", false
	}
	return key[:idx], key[idx+1:], true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
