package handlers

import (
	"pantryplanner/domain"
	"pantryplanner/internal/api/presenters"
	"pantryplanner/pkg/pantry"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	PantryHandler interface {
		GetPantry(c *fiber.Ctx) error
		AddPantryItem(c *fiber.Ctx) error
		UpdatePantryItem(c *fiber.Ctx) error
		DeletePantryItem(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		validator:     validator,
	}
}

func householdIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("household_id").(string)
	return uuid.Parse(raw)
}

func (h *pantryHandler) GetPantry(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantry, domain.ErrParseUUID)
	}

	snapshot, err := h.pantryService.GetPantry(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPantry, err)
	}

	return presenters.SuccessResponse(c, snapshot.PantryItems, fiber.StatusOK, domain.MessageSuccessGetPantry)
}

func (h *pantryHandler) AddPantryItem(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, domain.ErrParseUUID)
	}

	req := new(domain.AddPantryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	itemID, snapshot, err := h.pantryService.AddPantryItem(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"id":            itemID,
		"shopping_list": snapshot.ShoppingList,
	}, fiber.StatusCreated, domain.MessageSuccessAddPantryItem)
}

func (h *pantryHandler) UpdatePantryItem(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, domain.ErrParseUUID)
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, domain.ErrParseUUID)
	}

	req := new(domain.UpdatePantryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	snapshot, err := h.pantryService.UpdatePantryItem(c.Context(), itemID, *req, householdID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrPantryItemNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdatePantryItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"shopping_list": snapshot.ShoppingList,
	}, fiber.StatusOK, domain.MessageSuccessUpdatePantryItem)
}

func (h *pantryHandler) DeletePantryItem(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePantryItem, domain.ErrParseUUID)
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePantryItem, domain.ErrParseUUID)
	}

	if _, err := h.pantryService.DeletePantryItem(c.Context(), itemID, householdID); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrPantryItemNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeletePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePantryItem)
}
