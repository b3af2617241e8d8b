package entities

import (
	"time"

	"github.com/google/uuid"
)

// ExpiryLookaheadDays is the window used for the "expires soon" flag and the
// default expiration alerts.
const ExpiryLookaheadDays = 3

type PantryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID  uuid.UUID `gorm:"index" json:"household_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Unit         string    `json:"unit"`
	MinThreshold float64   `json:"min_threshold"`

	Locations []PantryLocation `gorm:"foreignKey:PantryItemID;constraint:OnDelete:CASCADE" json:"locations"`

	Household *Household `gorm:"foreignKey:HouseholdID" json:"-"`
	Timestamp
}

type PantryLocation struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PantryItemID   uuid.UUID  `gorm:"index" json:"pantry_item_id"`
	Location       string     `json:"location"` // "Pantry", "Fridge", "Freezer", ...
	Quantity       float64    `json:"quantity"`
	ExpirationDate *time.Time `gorm:"type:date" json:"expiration_date,omitempty"`

	Timestamp
}

// TotalQuantity sums quantities across all storage locations.
func (p *PantryItem) TotalQuantity() float64 {
	var total float64
	for _, loc := range p.Locations {
		total += loc.Quantity
	}
	return total
}

// ExpiresSoon reports whether any location expires within the lookahead window.
func (p *PantryItem) ExpiresSoon(today time.Time) bool {
	cutoff := today.AddDate(0, 0, ExpiryLookaheadDays)
	for _, loc := range p.Locations {
		if loc.ExpirationDate != nil && !loc.ExpirationDate.After(cutoff) {
			return true
		}
	}
	return false
}
