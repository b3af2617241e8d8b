package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Shopping entry provenance. Meals and Threshold entries are derived on every
// rebuild; only Manual entries exist as rows.
const (
	SourceMeals     = "Meals"
	SourceThreshold = "Threshold"
	SourceManual    = "Manual"
)

var (
	MessageSuccessGetShoppingList  = "shopping list retrieved successfully"
	MessageSuccessAddManualItem    = "manual item added successfully"
	MessageSuccessUpdateManualItem = "manual item updated successfully"
	MessageSuccessDeleteManualItem = "manual item deleted successfully"
	MessageSuccessClearChecked     = "checked items cleared"
	MessageSuccessAddToPantry      = "checked items added to pantry"
	MessageSuccessRegenerate       = "shopping list regenerated"

	MessageFailedGetShoppingList  = "failed to retrieve shopping list"
	MessageFailedAddManualItem    = "failed to add manual item"
	MessageFailedUpdateManualItem = "failed to update manual item"
	MessageFailedDeleteManualItem = "failed to delete manual item"
	MessageFailedClearChecked     = "failed to clear checked items"
	MessageFailedAddToPantry      = "failed to add checked items to pantry"

	ErrManualItemNotFound = errors.New("manual shopping item not found")
)

type (
	// ShoppingEntry is one line of the consolidated shopping list. ID is set
	// only for manual entries.
	ShoppingEntry struct {
		ID        *uuid.UUID `json:"id,omitempty"`
		Name      string     `json:"name"`
		Quantity  float64    `json:"quantity"`
		Unit      string     `json:"unit"`
		Category  string     `json:"category"`
		Source    string     `json:"source"`
		Checked   bool       `json:"checked"`
		CheckedAt *time.Time `json:"checked_at,omitempty"`
		CheckedBy *uuid.UUID `json:"checked_by,omitempty"`
	}

	AddManualItemRequest struct {
		Name     string  `json:"name" validate:"required,min=1,max=100"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Unit     string  `json:"unit" validate:"required,min=1,max=20"`
		Category string  `json:"category"`
	}

	UpdateManualItemRequest struct {
		Checked  *bool    `json:"checked"`
		Quantity *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Name     string   `json:"name" validate:"omitempty,min=1,max=100"`
		Category string   `json:"category"`
	}
)
