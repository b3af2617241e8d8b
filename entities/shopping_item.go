package entities

import (
	"time"

	"github.com/google/uuid"
)

// ManualShoppingItem is the only persisted kind of shopping entry. Items
// sourced from meal plans or low-stock thresholds are derived on every state
// rebuild and never stored as rows.
type ManualShoppingItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID  `gorm:"index" json:"household_id"`
	Name        string     `json:"name"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	Category    string     `gorm:"default:Other" json:"category"`
	Checked     bool       `gorm:"default:false" json:"checked"`
	CheckedAt   *time.Time `gorm:"type:timestamp" json:"checked_at,omitempty"`
	CheckedBy   *uuid.UUID `json:"checked_by,omitempty"`

	Household *Household `gorm:"foreignKey:HouseholdID" json:"-"`
	Timestamp
}
