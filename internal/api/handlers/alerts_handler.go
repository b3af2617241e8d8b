package handlers

import (
	"sort"

	"pantryplanner/domain"
	"pantryplanner/entities"
	"pantryplanner/internal/api/presenters"
	"pantryplanner/pkg/state"

	"github.com/gofiber/fiber/v2"
)

type (
	AlertsHandler interface {
		GetExpiringItems(c *fiber.Ctx) error
		GetRecipeSuggestions(c *fiber.Ctx) error
		GetReadyToCook(c *fiber.Ctx) error
		GetPantryHealth(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
	}

	alertsHandler struct {
		stateManager *state.Manager
	}
)

func NewAlertsHandler(stateManager *state.Manager) AlertsHandler {
	return &alertsHandler{stateManager: stateManager}
}

func (h *alertsHandler) GetExpiringItems(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetState, domain.ErrParseUUID)
	}

	days := c.QueryInt("days", entities.ExpiryLookaheadDays)
	if days < 0 {
		days = entities.ExpiryLookaheadDays
	}

	snapshot, err := h.stateManager.GetState(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetState, err)
	}

	return presenters.SuccessResponse(c, snapshot.ExpiringSoon(days), fiber.StatusOK, domain.MessageSuccessGetExpiring)
}

func (h *alertsHandler) GetRecipeSuggestions(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetState, domain.ErrParseUUID)
	}

	snapshot, err := h.stateManager.GetState(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetState, err)
	}

	return presenters.SuccessResponse(c, snapshot.SuggestRecipesForExpiring(), fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}

func (h *alertsHandler) GetReadyToCook(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetState, domain.ErrParseUUID)
	}

	snapshot, err := h.stateManager.GetState(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetState, err)
	}

	ready := make([]entities.Recipe, 0, len(snapshot.ReadyRecipeIDs))
	for _, id := range snapshot.ReadyRecipeIDs {
		if r := snapshot.FindRecipe(id); r != nil {
			ready = append(ready, *r)
		}
	}

	return presenters.SuccessResponse(c, ready, fiber.StatusOK, domain.MessageSuccessGetReady)
}

func (h *alertsHandler) GetPantryHealth(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetState, domain.ErrParseUUID)
	}

	snapshot, err := h.stateManager.GetState(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetState, err)
	}

	return presenters.SuccessResponse(c, snapshot.PantryHealth(), fiber.StatusOK, domain.MessageSuccessGetHealth)
}

func (h *alertsHandler) GetDashboard(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetState, domain.ErrParseUUID)
	}

	snapshot, err := h.stateManager.GetState(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetState, err)
	}

	expiring := snapshot.ExpiringSoon(entities.ExpiryLookaheadDays)

	upcoming := make([]entities.MealPlan, 0)
	for _, meal := range snapshot.MealPlans {
		if meal.Active(snapshot.Today()) {
			upcoming = append(upcoming, meal)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	var nextMeal *entities.MealPlan
	if len(upcoming) > 0 {
		nextMeal = &upcoming[0]
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"health":              snapshot.PantryHealth(),
		"expiring_items":      expiring,
		"upcoming_meals":      upcoming,
		"next_meal":           nextMeal,
		"ready_to_cook_count": len(snapshot.ReadyRecipeIDs),
		"shopping_list_count": len(snapshot.ShoppingList),
		"last_updated":        snapshot.LastUpdated,
	}, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
