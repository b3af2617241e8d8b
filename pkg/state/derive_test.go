package state

import (
	"testing"
	"time"

	"pantryplanner/domain"
	"pantryplanner/entities"

	"github.com/google/uuid"
)

var testToday = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func pantryItem(name, category, unit string, threshold float64, locations ...entities.PantryLocation) entities.PantryItem {
	return entities.PantryItem{
		ID:           uuid.New(),
		Name:         name,
		Category:     category,
		Unit:         unit,
		MinThreshold: threshold,
		Locations:    locations,
	}
}

func recipeWith(name string, ingredients ...entities.RecipeIngredient) entities.Recipe {
	return entities.Recipe{
		ID:          uuid.New(),
		Name:        name,
		Ingredients: ingredients,
	}
}

func ingredient(name string, qty float64, unit string) entities.RecipeIngredient {
	return entities.RecipeIngredient{Name: name, Quantity: qty, Unit: unit}
}

func mealFor(recipeID uuid.UUID, date time.Time, multiplier float64) entities.MealPlan {
	return entities.MealPlan{
		ID:                uuid.New(),
		RecipeID:          recipeID,
		Date:              date,
		ServingMultiplier: multiplier,
	}
}

func TestReservationsAccumulateAcrossMeals(t *testing.T) {
	pancakes := recipeWith("Pancakes", ingredient("flour", 2, "cups"))
	bread := recipeWith("Bread", ingredient("Flour", 3, "cups"))

	meals := []entities.MealPlan{
		mealFor(pancakes.ID, testToday, 1),
		mealFor(bread.ID, testToday.AddDate(0, 0, 1), 2),
	}

	s := Derive(uuid.New(), nil, []entities.Recipe{pancakes, bread}, meals, nil, testToday)

	got := s.ReservedIngredients[IngredientKey("flour", "cups")]
	if got != 8 {
		t.Fatalf("reserved flour = %v, want 8", got)
	}
}

func TestCookedAndPastMealsReserveNothing(t *testing.T) {
	soup := recipeWith("Soup", ingredient("carrot", 4, "pcs"))

	cooked := mealFor(soup.ID, testToday, 1)
	cooked.Cooked = true
	past := mealFor(soup.ID, testToday.AddDate(0, 0, -1), 1)

	s := Derive(uuid.New(), nil, []entities.Recipe{soup}, []entities.MealPlan{cooked, past}, nil, testToday)

	if len(s.ReservedIngredients) != 0 {
		t.Fatalf("reserved = %v, want empty", s.ReservedIngredients)
	}
}

func TestShoppingListMergesMealAndThresholdShortfalls(t *testing.T) {
	// stock 1, threshold 5, meal needs 3: meal shortfall 2, threshold
	// shortfall 4. One line, the larger quantity, tagged by the first writer.
	milk := pantryItem("milk", "Dairy", "liters", 5,
		entities.PantryLocation{Location: "Fridge", Quantity: 1})
	porridge := recipeWith("Porridge", ingredient("milk", 3, "liters"))
	meals := []entities.MealPlan{mealFor(porridge.ID, testToday, 1)}

	s := Derive(uuid.New(), []entities.PantryItem{milk}, []entities.Recipe{porridge}, meals, nil, testToday)

	if len(s.ShoppingList) != 1 {
		t.Fatalf("shopping list has %d entries, want 1: %+v", len(s.ShoppingList), s.ShoppingList)
	}
	entry := s.ShoppingList[0]
	if entry.Name != "Milk" {
		t.Errorf("name = %q, want %q", entry.Name, "Milk")
	}
	if entry.Quantity != 4 {
		t.Errorf("quantity = %v, want 4", entry.Quantity)
	}
	if entry.Source != domain.SourceMeals {
		t.Errorf("source = %q, want %q", entry.Source, domain.SourceMeals)
	}
	if entry.Category != "Dairy" {
		t.Errorf("category = %q, want %q", entry.Category, "Dairy")
	}
}

func TestShoppingListThresholdOnly(t *testing.T) {
	rice := pantryItem("rice", "Grains", "kg", 2,
		entities.PantryLocation{Location: "Pantry", Quantity: 0.5})

	s := Derive(uuid.New(), []entities.PantryItem{rice}, nil, nil, nil, testToday)

	if len(s.ShoppingList) != 1 {
		t.Fatalf("shopping list has %d entries, want 1", len(s.ShoppingList))
	}
	entry := s.ShoppingList[0]
	if entry.Source != domain.SourceThreshold {
		t.Errorf("source = %q, want %q", entry.Source, domain.SourceThreshold)
	}
	if entry.Quantity != 1.5 {
		t.Errorf("quantity = %v, want 1.5", entry.Quantity)
	}
}

func TestShoppingListManualEntriesKeptVerbatim(t *testing.T) {
	manual := entities.ManualShoppingItem{
		ID:       uuid.New(),
		Name:     "paper towels",
		Quantity: 2,
		Unit:     "rolls",
		Category: "Household",
	}

	s := Derive(uuid.New(), nil, nil, nil, []entities.ManualShoppingItem{manual}, testToday)

	if len(s.ShoppingList) != 1 {
		t.Fatalf("shopping list has %d entries, want 1", len(s.ShoppingList))
	}
	entry := s.ShoppingList[0]
	if entry.Name != "paper towels" {
		t.Errorf("manual name was altered: %q", entry.Name)
	}
	if entry.Source != domain.SourceManual {
		t.Errorf("source = %q, want %q", entry.Source, domain.SourceManual)
	}
	if entry.ID == nil || *entry.ID != manual.ID {
		t.Errorf("manual entry should carry its row ID")
	}
}

func TestShoppingListSortedByCategoryThenName(t *testing.T) {
	items := []entities.PantryItem{
		pantryItem("zucchini", "Produce", "pcs", 3),
		pantryItem("apples", "Produce", "pcs", 3),
		pantryItem("cheddar", "Dairy", "g", 200),
	}

	s := Derive(uuid.New(), items, nil, nil, nil, testToday)

	if len(s.ShoppingList) != 3 {
		t.Fatalf("shopping list has %d entries, want 3", len(s.ShoppingList))
	}
	order := []string{"Cheddar", "Apples", "Zucchini"}
	for i, want := range order {
		if s.ShoppingList[i].Name != want {
			t.Errorf("position %d = %q, want %q", i, s.ShoppingList[i].Name, want)
		}
	}
}

func TestReadyToCookNetsOutReservations(t *testing.T) {
	eggs := pantryItem("eggs", "Dairy", "pcs", 0,
		entities.PantryLocation{Location: "Fridge", Quantity: 6})

	omelette := recipeWith("Omelette", ingredient("eggs", 3, "pcs"))
	quiche := recipeWith("Quiche", ingredient("eggs", 4, "pcs"))
	meals := []entities.MealPlan{mealFor(quiche.ID, testToday, 1)}

	s := Derive(uuid.New(), []entities.PantryItem{eggs}, []entities.Recipe{omelette, quiche}, meals, nil, testToday)

	// 6 in stock minus 4 reserved leaves 2, so neither recipe is coverable.
	if s.IsReady(omelette.ID) {
		t.Errorf("omelette should not be ready with only 2 unreserved eggs")
	}

	noMeals := Derive(uuid.New(), []entities.PantryItem{eggs}, []entities.Recipe{omelette, quiche}, nil, nil, testToday)
	if !noMeals.IsReady(omelette.ID) {
		t.Errorf("omelette should be ready without reservations")
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	householdID := uuid.New()
	flour := pantryItem("flour", "Baking", "cups", 10,
		entities.PantryLocation{Location: "Pantry", Quantity: 2})
	sugar := pantryItem("sugar", "Baking", "cups", 4,
		entities.PantryLocation{Location: "Pantry", Quantity: 1})
	cake := recipeWith("Cake", ingredient("flour", 3, "cups"), ingredient("sugar", 2, "cups"))
	meals := []entities.MealPlan{mealFor(cake.ID, testToday, 2)}

	first := Derive(householdID, []entities.PantryItem{flour, sugar}, []entities.Recipe{cake}, meals, nil, testToday)
	second := Derive(householdID, []entities.PantryItem{flour, sugar}, []entities.Recipe{cake}, meals, nil, testToday)

	if len(first.ShoppingList) != len(second.ShoppingList) {
		t.Fatalf("rebuild changed the shopping list length")
	}
	for i := range first.ShoppingList {
		a, b := first.ShoppingList[i], second.ShoppingList[i]
		if a.Name != b.Name || a.Quantity != b.Quantity || a.Source != b.Source {
			t.Errorf("entry %d differs between rebuilds: %+v vs %+v", i, a, b)
		}
	}
	for key, qty := range first.ReservedIngredients {
		if second.ReservedIngredients[key] != qty {
			t.Errorf("reserved[%s] differs between rebuilds", key)
		}
	}
}

func TestShoppingListOrderStableForSameNameDifferentUnits(t *testing.T) {
	// Two reserved entries tying on category and name must still come out in
	// one fixed order on every rebuild.
	householdID := uuid.New()
	stew := recipeWith("Stew", ingredient("milk", 2, "liters"))
	shake := recipeWith("Shake", ingredient("milk", 1, "gallons"))
	recipes := []entities.Recipe{stew, shake}
	meals := []entities.MealPlan{
		mealFor(stew.ID, testToday, 1),
		mealFor(shake.ID, testToday, 1),
	}

	first := Derive(householdID, nil, recipes, meals, nil, testToday)
	if len(first.ShoppingList) != 2 {
		t.Fatalf("shopping list has %d entries, want 2", len(first.ShoppingList))
	}
	if first.ShoppingList[0].Unit != "gallons" || first.ShoppingList[1].Unit != "liters" {
		t.Fatalf("unit order = [%s %s], want [gallons liters]",
			first.ShoppingList[0].Unit, first.ShoppingList[1].Unit)
	}

	for i := 0; i < 200; i++ {
		again := Derive(householdID, nil, recipes, meals, nil, testToday)
		for j := range first.ShoppingList {
			if again.ShoppingList[j].Unit != first.ShoppingList[j].Unit {
				t.Fatalf("rebuild %d changed entry order: [%s %s] vs [%s %s]", i,
					again.ShoppingList[0].Unit, again.ShoppingList[1].Unit,
					first.ShoppingList[0].Unit, first.ShoppingList[1].Unit)
			}
		}
	}
}

func TestExpiringSoonSortedAndFlagsExpired(t *testing.T) {
	yogurt := pantryItem("yogurt", "Dairy", "cups", 0,
		entities.PantryLocation{Location: "Fridge", Quantity: 2, ExpirationDate: datePtr(testToday.AddDate(0, 0, 2))},
		entities.PantryLocation{Location: "Fridge", Quantity: 1, ExpirationDate: datePtr(testToday.AddDate(0, 0, -1))})
	pasta := pantryItem("pasta", "Grains", "kg", 0,
		entities.PantryLocation{Location: "Pantry", Quantity: 1})

	s := Derive(uuid.New(), []entities.PantryItem{yogurt, pasta}, nil, nil, nil, testToday)

	expiring := s.ExpiringSoon(3)
	if len(expiring) != 2 {
		t.Fatalf("got %d expiring locations, want 2", len(expiring))
	}
	if !expiring[0].IsExpired || expiring[0].ExpiresInDays != -1 {
		t.Errorf("soonest entry should be the expired one: %+v", expiring[0])
	}
	if expiring[1].ExpiresInDays != 2 {
		t.Errorf("second entry days = %d, want 2", expiring[1].ExpiresInDays)
	}
}

func TestExpiringSoonFloorsTimestampedDates(t *testing.T) {
	// A hand-edited row can carry a time-of-day component; the day count must
	// still floor to whole dates, not truncate toward zero.
	stamped := testToday.Add(-36 * time.Hour) // a day and a half ago, 12:00
	leftovers := pantryItem("leftovers", "Prepared", "portions", 0,
		entities.PantryLocation{Location: "Fridge", Quantity: 1, ExpirationDate: datePtr(stamped)})

	s := Derive(uuid.New(), []entities.PantryItem{leftovers}, nil, nil, nil, testToday)

	expiring := s.ExpiringSoon(3)
	if len(expiring) != 1 {
		t.Fatalf("got %d expiring locations, want 1", len(expiring))
	}
	if expiring[0].ExpiresInDays != -2 {
		t.Errorf("days = %d, want -2", expiring[0].ExpiresInDays)
	}
	if !expiring[0].IsExpired {
		t.Errorf("entry should be flagged expired")
	}
}

func TestSuggestRecipesForExpiring(t *testing.T) {
	spinach := pantryItem("spinach", "Produce", "g", 0,
		entities.PantryLocation{Location: "Fridge", Quantity: 200, ExpirationDate: datePtr(testToday.AddDate(0, 0, 1))})
	salad := recipeWith("Spinach Salad", ingredient("spinach", 100, "g"))
	toast := recipeWith("Plain Toast", ingredient("bread", 2, "slices"))

	s := Derive(uuid.New(), []entities.PantryItem{spinach}, []entities.Recipe{salad, toast}, nil, nil, testToday)

	suggestions := s.SuggestRecipesForExpiring()
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}
	if suggestions[0].ExpiringItem != "spinach" {
		t.Errorf("expiring item = %q", suggestions[0].ExpiringItem)
	}
	if len(suggestions[0].Recipes) != 1 || suggestions[0].Recipes[0].Name != "Spinach Salad" {
		t.Errorf("suggested recipes = %+v", suggestions[0].Recipes)
	}
	if !suggestions[0].Recipes[0].ReadyToCook {
		t.Errorf("salad should be ready to cook with 200g in stock")
	}
}

func TestPantryHealthScoreAndBuckets(t *testing.T) {
	// 3 items below threshold and 2 expiring locations: 100 - 30 - 10 = 60.
	items := []entities.PantryItem{
		pantryItem("a", "X", "pcs", 5),
		pantryItem("b", "X", "pcs", 5),
		pantryItem("c", "X", "pcs", 5),
		pantryItem("d", "X", "pcs", 0,
			entities.PantryLocation{Location: "Fridge", Quantity: 1, ExpirationDate: datePtr(testToday.AddDate(0, 0, 1))},
			entities.PantryLocation{Location: "Freezer", Quantity: 1, ExpirationDate: datePtr(testToday.AddDate(0, 0, 2))}),
	}

	s := Derive(uuid.New(), items, nil, nil, nil, testToday)

	health := s.PantryHealth()
	if health.HealthScore != 60 {
		t.Errorf("score = %d, want 60", health.HealthScore)
	}
	if health.Status != domain.HealthGood {
		t.Errorf("status = %q, want %q", health.Status, domain.HealthGood)
	}
	if health.BelowThreshold != 3 || health.ExpiringSoon != 2 {
		t.Errorf("counts = %d below, %d expiring", health.BelowThreshold, health.ExpiringSoon)
	}
}

func TestPantryHealthClampsAtZero(t *testing.T) {
	var items []entities.PantryItem
	for i := 0; i < 12; i++ {
		items = append(items, pantryItem("item", "X", "pcs", 5))
	}

	s := Derive(uuid.New(), items, nil, nil, nil, testToday)

	health := s.PantryHealth()
	if health.HealthScore != 0 {
		t.Errorf("score = %d, want 0", health.HealthScore)
	}
	if health.Status != domain.HealthPoor {
		t.Errorf("status = %q, want %q", health.Status, domain.HealthPoor)
	}
}

func TestValidateCanCookReportsShortfalls(t *testing.T) {
	butter := pantryItem("butter", "Dairy", "g", 0,
		entities.PantryLocation{Location: "Fridge", Quantity: 50})
	cookies := recipeWith("Cookies", ingredient("butter", 100, "g"), ingredient("sugar", 80, "g"))
	meal := mealFor(cookies.ID, testToday, 1)

	s := Derive(uuid.New(), []entities.PantryItem{butter}, []entities.Recipe{cookies}, []entities.MealPlan{meal}, nil, testToday)

	validation, err := s.ValidateCanCook(meal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if validation.CanCook {
		t.Fatalf("should not be cookable")
	}
	if len(validation.Missing) != 2 {
		t.Fatalf("got %d missing ingredients, want 2", len(validation.Missing))
	}
	if validation.Missing[0].Ingredient != "butter" || validation.Missing[0].Short != 50 {
		t.Errorf("butter shortfall = %+v", validation.Missing[0])
	}
	if validation.Missing[1].Ingredient != "sugar" || validation.Missing[1].Short != 80 {
		t.Errorf("sugar shortfall = %+v", validation.Missing[1])
	}
}

func TestValidateCanCookUnknownMeal(t *testing.T) {
	s := Derive(uuid.New(), nil, nil, nil, nil, testToday)

	if _, err := s.ValidateCanCook(uuid.New()); err != domain.ErrMealNotFound {
		t.Fatalf("err = %v, want ErrMealNotFound", err)
	}
}

func TestIngredientKeyLowercasesName(t *testing.T) {
	if IngredientKey("Flour", "cups") != "flour|cups" {
		t.Errorf("key = %q", IngredientKey("Flour", "cups"))
	}
}
