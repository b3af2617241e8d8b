package mealplan

import (
	"sort"

	"pantryplanner/entities"

	"github.com/google/uuid"
)

// locationDebit is one pantry location update produced by planDepletion.
type locationDebit struct {
	LocationID  uuid.UUID
	NewQuantity float64
}

// planDepletion consumes quantity from locations soonest-expiring first;
// locations without an expiration date sort last. Each location is clamped at
// zero and the remainder carries to the next one. Quantities never go
// negative, even when stock cannot cover the full amount.
func planDepletion(locations []entities.PantryLocation, quantity float64) []locationDebit {
	ordered := make([]entities.PantryLocation, len(locations))
	copy(ordered, locations)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].ExpirationDate, ordered[j].ExpirationDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})

	var debits []locationDebit
	remaining := quantity

	for _, loc := range ordered {
		if remaining <= 0 {
			break
		}

		if loc.Quantity >= remaining {
			debits = append(debits, locationDebit{LocationID: loc.ID, NewQuantity: loc.Quantity - remaining})
			remaining = 0
		} else {
			remaining -= loc.Quantity
			debits = append(debits, locationDebit{LocationID: loc.ID, NewQuantity: 0})
		}
	}

	return debits
}
