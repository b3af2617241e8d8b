package domain

import (
	"errors"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantry        = "pantry retrieved successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantry        = "failed to retrieve pantry"

	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrNoLocations        = errors.New("at least one location is required")
	ErrInvalidDate        = errors.New("invalid date format, expected YYYY-MM-DD")
)

type (
	PantryLocationRequest struct {
		Location       string  `json:"location" validate:"required,min=1,max=50"`
		Quantity       float64 `json:"quantity" validate:"min=0"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty"`
	}

	AddPantryItemRequest struct {
		Name         string                  `json:"name" validate:"required,min=1,max=100"`
		Category     string                  `json:"category" validate:"required,min=1,max=50"`
		Unit         string                  `json:"unit" validate:"required,min=1,max=20"`
		MinThreshold float64                 `json:"min_threshold" validate:"min=0"`
		Locations    []PantryLocationRequest `json:"locations" validate:"required,min=1,dive"`
	}

	UpdatePantryItemRequest struct {
		Name         string                  `json:"name" validate:"omitempty,min=1,max=100"`
		Category     string                  `json:"category" validate:"omitempty,min=1,max=50"`
		Unit         string                  `json:"unit" validate:"omitempty,min=1,max=20"`
		MinThreshold *float64                `json:"min_threshold" validate:"omitempty,min=0"`
		Locations    []PantryLocationRequest `json:"locations" validate:"omitempty,dive"`
	}
)
