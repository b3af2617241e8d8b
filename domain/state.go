package domain

import (
	"time"
)

var (
	MessageSuccessGetExpiring    = "expiring items retrieved successfully"
	MessageSuccessGetSuggestions = "suggestions retrieved successfully"
	MessageSuccessGetReady       = "ready recipes retrieved successfully"
	MessageSuccessGetHealth      = "pantry health retrieved successfully"
	MessageSuccessGetDashboard   = "dashboard retrieved successfully"

	MessageFailedGetState = "failed to retrieve household state"
)

// Pantry health status buckets.
const (
	HealthExcellent = "excellent"
	HealthGood      = "good"
	HealthFair      = "fair"
	HealthPoor      = "poor"
)

type (
	// ExpiringItem is one pantry location inside the expiry lookahead window.
	ExpiringItem struct {
		ItemID        string    `json:"item_id"`
		ItemName      string    `json:"item_name"`
		Location      string    `json:"location"`
		Quantity      float64   `json:"quantity"`
		Unit          string    `json:"unit"`
		ExpiresOn     time.Time `json:"expires_on"`
		ExpiresInDays int       `json:"expires_in_days"`
		IsExpired     bool      `json:"is_expired"`
	}

	// SuggestedRecipe annotates a recipe that uses an expiring ingredient.
	SuggestedRecipe struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Tags        []string `json:"tags"`
		ReadyToCook bool     `json:"ready_to_cook"`
	}

	// RecipeSuggestion groups an expiring item with recipes that use it.
	RecipeSuggestion struct {
		ExpiringItem  string            `json:"expiring_item"`
		ExpiresInDays int               `json:"expires_in_days"`
		Quantity      float64           `json:"quantity"`
		Unit          string            `json:"unit"`
		Recipes       []SuggestedRecipe `json:"recipes"`
	}

	PantryHealth struct {
		TotalItems     int    `json:"total_items"`
		BelowThreshold int    `json:"below_threshold"`
		ExpiringSoon   int    `json:"expiring_soon"`
		HealthScore    int    `json:"health_score"`
		Status         string `json:"status"`
	}
)
