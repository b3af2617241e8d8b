package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Household struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"owner_id"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
	Timestamp
}

type HouseholdMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `gorm:"index" json:"household_id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Role        string    `gorm:"default:member" json:"role"` // "owner" or "member"

	Household *Household `gorm:"foreignKey:HouseholdID" json:"-"`
	User      *User      `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type HouseholdInvite struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `gorm:"index" json:"household_id"`
	Code        string    `gorm:"uniqueIndex" json:"code"`
	CreatedBy   uuid.UUID `json:"created_by"`
	ExpiresAt   time.Time `gorm:"type:timestamp" json:"expires_at"`

	Household *Household `gorm:"foreignKey:HouseholdID" json:"-"`
	Timestamp
}

type HouseholdSettings struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID      `gorm:"uniqueIndex" json:"household_id"`
	Locations   pq.StringArray `gorm:"type:text[]" json:"locations"`
	Categories  pq.StringArray `gorm:"type:text[]" json:"categories"`

	Household *Household `gorm:"foreignKey:HouseholdID" json:"-"`
	Timestamp
}

// DefaultLocations and DefaultCategories seed settings for new households.
var (
	DefaultLocations  = []string{"Pantry", "Refrigerator", "Freezer", "Cabinet", "Counter"}
	DefaultCategories = []string{"Meat", "Dairy", "Produce", "Pantry", "Frozen", "Spices", "Beverages", "Snacks", "Other"}
)
