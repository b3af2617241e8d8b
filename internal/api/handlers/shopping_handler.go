package handlers

import (
	"pantryplanner/domain"
	"pantryplanner/internal/api/presenters"
	"pantryplanner/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		Regenerate(c *fiber.Ctx) error
		AddManualItem(c *fiber.Ctx) error
		UpdateManualItem(c *fiber.Ctx) error
		DeleteManualItem(c *fiber.Ctx) error
		ClearChecked(c *fiber.Ctx) error
		AddCheckedToPantry(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, domain.ErrParseUUID)
	}

	snapshot, err := h.shoppingService.GetShoppingList(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, snapshot.ShoppingList, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) Regenerate(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, domain.ErrParseUUID)
	}

	snapshot, err := h.shoppingService.Regenerate(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, snapshot.ShoppingList, fiber.StatusOK, domain.MessageSuccessRegenerate)
}

func (h *shoppingHandler) AddManualItem(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddManualItem, domain.ErrParseUUID)
	}

	req := new(domain.AddManualItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddManualItem, err)
	}

	itemID, snapshot, err := h.shoppingService.AddManualItem(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddManualItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"id":            itemID,
		"shopping_list": snapshot.ShoppingList,
	}, fiber.StatusCreated, domain.MessageSuccessAddManualItem)
}

func (h *shoppingHandler) UpdateManualItem(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateManualItem, domain.ErrParseUUID)
	}

	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateManualItem, domain.ErrParseUUID)
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateManualItem, domain.ErrParseUUID)
	}

	req := new(domain.UpdateManualItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateManualItem, err)
	}

	snapshot, err := h.shoppingService.UpdateManualItem(c.Context(), itemID, *req, householdID, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrManualItemNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateManualItem, err)
	}

	return presenters.SuccessResponse(c, snapshot.ShoppingList, fiber.StatusOK, domain.MessageSuccessUpdateManualItem)
}

func (h *shoppingHandler) DeleteManualItem(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteManualItem, domain.ErrParseUUID)
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteManualItem, domain.ErrParseUUID)
	}

	if _, err := h.shoppingService.DeleteManualItem(c.Context(), itemID, householdID); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrManualItemNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteManualItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteManualItem)
}

func (h *shoppingHandler) ClearChecked(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearChecked, domain.ErrParseUUID)
	}

	snapshot, err := h.shoppingService.ClearChecked(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedClearChecked, err)
	}

	return presenters.SuccessResponse(c, snapshot.ShoppingList, fiber.StatusOK, domain.MessageSuccessClearChecked)
}

func (h *shoppingHandler) AddCheckedToPantry(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToPantry, domain.ErrParseUUID)
	}

	added, snapshot, err := h.shoppingService.AddCheckedToPantry(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddToPantry, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"added":         added,
		"pantry_items":  snapshot.PantryItems,
		"shopping_list": snapshot.ShoppingList,
	}, fiber.StatusOK, domain.MessageSuccessAddToPantry)
}
