package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Recipe struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID  uuid.UUID      `gorm:"index" json:"household_id"`
	Name         string         `json:"name"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	PhotoURL     string         `json:"photo_url,omitempty"`
	Instructions string         `gorm:"type:text" json:"instructions,omitempty"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`

	Household *Household `gorm:"foreignKey:HouseholdID" json:"-"`
	Timestamp
}

type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"index" json:"recipe_id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`

	Timestamp
}

// ScaledQuantity returns the ingredient quantity at a serving multiplier.
func (i *RecipeIngredient) ScaledQuantity(multiplier float64) float64 {
	return i.Quantity * multiplier
}
