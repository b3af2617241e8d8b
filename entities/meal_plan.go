package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealPlan struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID       uuid.UUID `gorm:"index" json:"household_id"`
	RecipeID          uuid.UUID `json:"recipe_id"`
	Date              time.Time `gorm:"type:date" json:"date"`
	ServingMultiplier float64   `gorm:"default:1" json:"serving_multiplier"`
	Cooked            bool      `gorm:"default:false" json:"cooked"`

	Recipe    *Recipe    `gorm:"foreignKey:RecipeID" json:"-"`
	Household *Household `gorm:"foreignKey:HouseholdID" json:"-"`
	Timestamp
}

// Active reports whether the meal still reserves ingredients: not yet cooked
// and planned for today or later.
func (m *MealPlan) Active(today time.Time) bool {
	return !m.Cooked && !m.Date.Before(today)
}
