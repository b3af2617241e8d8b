package state

import (
	"math"
	"sort"
	"strings"
	"time"

	"pantryplanner/domain"
	"pantryplanner/entities"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// HouseholdState is the complete derived snapshot for one household. It is
// built once per cache miss and never mutated afterwards; any write to the
// underlying records invalidates the whole snapshot.
type HouseholdState struct {
	HouseholdID uuid.UUID                     `json:"household_id"`
	PantryItems []entities.PantryItem         `json:"pantry_items"`
	Recipes     []entities.Recipe             `json:"recipes"`
	MealPlans   []entities.MealPlan           `json:"meal_plans"`
	ManualItems []entities.ManualShoppingItem `json:"manual_items"`

	// ReservedIngredients maps "name|unit" (name lowercased) to the quantity
	// earmarked by active meal plans.
	ReservedIngredients map[string]float64    `json:"reserved_ingredients"`
	ShoppingList        []domain.ShoppingEntry `json:"shopping_list"`
	ReadyRecipeIDs      []uuid.UUID            `json:"ready_to_cook_recipe_ids"`
	LastUpdated         time.Time              `json:"last_updated"`

	today time.Time
}

// IngredientKey builds the reservation map key for an ingredient.
func IngredientKey(name, unit string) string {
	return strings.ToLower(name) + "|" + unit
}

// Today returns the clock reading the snapshot was derived at.
func (s *HouseholdState) Today() time.Time {
	return s.today
}

// ExpiringSoon returns every pantry location expiring within the next N days,
// soonest first. Already expired locations are included with a negative day
// count.
func (s *HouseholdState) ExpiringSoon(days int) []domain.ExpiringItem {
	cutoff := s.today.AddDate(0, 0, days)
	var expiring []domain.ExpiringItem

	for _, item := range s.PantryItems {
		for _, loc := range item.Locations {
			if loc.ExpirationDate == nil {
				continue
			}
			// Expiration columns are date-typed, but a stray timestamp would
			// make the day arithmetic truncate instead of floor. Normalizing
			// here keeps the count exact either way.
			expires := dateOnly(*loc.ExpirationDate)
			if expires.After(cutoff) {
				continue
			}
			daysUntil := int(expires.Sub(s.today).Hours() / 24)
			expiring = append(expiring, domain.ExpiringItem{
				ItemID:        item.ID.String(),
				ItemName:      item.Name,
				Location:      loc.Location,
				Quantity:      loc.Quantity,
				Unit:          item.Unit,
				ExpiresOn:     expires,
				ExpiresInDays: daysUntil,
				IsExpired:     daysUntil < 0,
			})
		}
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].ExpiresOn.Before(expiring[j].ExpiresOn)
	})

	return expiring
}

// SuggestRecipesForExpiring pairs each distinct expiring item with the recipes
// that use it. Items no recipe uses are omitted.
func (s *HouseholdState) SuggestRecipesForExpiring() []domain.RecipeSuggestion {
	expiring := s.ExpiringSoon(entities.ExpiryLookaheadDays)
	suggestions := make([]domain.RecipeSuggestion, 0)
	seen := make(map[string]bool)

	for _, exp := range expiring {
		if seen[exp.ItemName] {
			continue
		}
		seen[exp.ItemName] = true

		var matching []domain.SuggestedRecipe
		for i := range s.Recipes {
			recipe := &s.Recipes[i]
			for _, ing := range recipe.Ingredients {
				if strings.EqualFold(ing.Name, exp.ItemName) {
					matching = append(matching, domain.SuggestedRecipe{
						ID:          recipe.ID.String(),
						Name:        recipe.Name,
						Tags:        recipe.Tags,
						ReadyToCook: s.IsReady(recipe.ID),
					})
					break
				}
			}
		}

		if len(matching) > 0 {
			suggestions = append(suggestions, domain.RecipeSuggestion{
				ExpiringItem:  exp.ItemName,
				ExpiresInDays: exp.ExpiresInDays,
				Quantity:      exp.Quantity,
				Unit:          exp.Unit,
				Recipes:       matching,
			})
		}
	}

	return suggestions
}

// ValidateCanCook checks whether the meal's full ingredient list is covered by
// current pantry stock, ignoring reservations. Shortfalls are reported per
// ingredient.
func (s *HouseholdState) ValidateCanCook(mealID uuid.UUID) (domain.CookValidation, error) {
	meal := s.FindMealPlan(mealID)
	if meal == nil {
		return domain.CookValidation{}, domain.ErrMealNotFound
	}

	recipe := s.FindRecipe(meal.RecipeID)
	if recipe == nil {
		return domain.CookValidation{}, domain.ErrRecipeNotFound
	}

	missing := make([]domain.MissingIngredient, 0)
	for _, ing := range recipe.Ingredients {
		needed := ing.ScaledQuantity(meal.ServingMultiplier)
		available := 0.0
		if item := s.findPantryItem(ing.Name, ing.Unit); item != nil {
			available = item.TotalQuantity()
		}

		if available < needed {
			missing = append(missing, domain.MissingIngredient{
				Ingredient: ing.Name,
				Unit:       ing.Unit,
				Needed:     round2(needed),
				Available:  round2(available),
				Short:      round2(needed - available),
			})
		}
	}

	return domain.CookValidation{
		CanCook:    len(missing) == 0,
		Missing:    missing,
		RecipeName: recipe.Name,
	}, nil
}

// PantryHealth scores the pantry from 0 to 100: -10 per item below its minimum
// threshold, -5 per location expiring within the lookahead window.
func (s *HouseholdState) PantryHealth() domain.PantryHealth {
	belowThreshold := 0
	for i := range s.PantryItems {
		if s.PantryItems[i].TotalQuantity() < s.PantryItems[i].MinThreshold {
			belowThreshold++
		}
	}
	expiringSoon := len(s.ExpiringSoon(entities.ExpiryLookaheadDays))

	score := 100 - belowThreshold*10 - expiringSoon*5
	if score < 0 {
		score = 0
	}

	status := domain.HealthPoor
	switch {
	case score >= 80:
		status = domain.HealthExcellent
	case score >= 60:
		status = domain.HealthGood
	case score >= 40:
		status = domain.HealthFair
	}

	return domain.PantryHealth{
		TotalItems:     len(s.PantryItems),
		BelowThreshold: belowThreshold,
		ExpiringSoon:   expiringSoon,
		HealthScore:    score,
		Status:         status,
	}
}

// IsReady reports whether a recipe is in the ready-to-cook set.
func (s *HouseholdState) IsReady(recipeID uuid.UUID) bool {
	for _, id := range s.ReadyRecipeIDs {
		if id == recipeID {
			return true
		}
	}
	return false
}

// FindRecipe returns the recipe with the given ID, or nil.
func (s *HouseholdState) FindRecipe(id uuid.UUID) *entities.Recipe {
	for i := range s.Recipes {
		if s.Recipes[i].ID == id {
			return &s.Recipes[i]
		}
	}
	return nil
}

// FindMealPlan returns the meal plan with the given ID, or nil.
func (s *HouseholdState) FindMealPlan(id uuid.UUID) *entities.MealPlan {
	for i := range s.MealPlans {
		if s.MealPlans[i].ID == id {
			return &s.MealPlans[i]
		}
	}
	return nil
}

func (s *HouseholdState) findPantryItem(name, unit string) *entities.PantryItem {
	for i := range s.PantryItems {
		if strings.EqualFold(s.PantryItems[i].Name, name) && s.PantryItems[i].Unit == unit {
			return &s.PantryItems[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
