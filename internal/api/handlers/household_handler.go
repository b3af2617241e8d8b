package handlers

import (
	"pantryplanner/domain"
	"pantryplanner/internal/api/presenters"
	"pantryplanner/pkg/household"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	HouseholdHandler interface {
		ListMyHouseholds(c *fiber.Ctx) error
		ListMembers(c *fiber.Ctx) error
		CreateInvite(c *fiber.Ctx) error
		AcceptInvite(c *fiber.Ctx) error
		GetSettings(c *fiber.Ctx) error
		UpdateSettings(c *fiber.Ctx) error
	}

	householdHandler struct {
		householdService household.HouseholdService
		validator        *validator.Validate
	}
)

func NewHouseholdHandler(householdService household.HouseholdService, validator *validator.Validate) HouseholdHandler {
	return &householdHandler{
		householdService: householdService,
		validator:        validator,
	}
}

func userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

func (h *householdHandler) ListMyHouseholds(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHouseholds, domain.ErrParseUUID)
	}

	households, err := h.householdService.ListMyHouseholds(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetHouseholds, err)
	}

	return presenters.SuccessResponse(c, households, fiber.StatusOK, domain.MessageSuccessGetHouseholds)
}

func (h *householdHandler) ListMembers(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMembers, domain.ErrParseUUID)
	}

	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMembers, domain.ErrParseUUID)
	}

	members, err := h.householdService.ListMembers(c.Context(), householdID, userID)
	if err != nil {
		status := fiber.StatusInternalServerError
		if err == domain.ErrNotAMember {
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetMembers, err)
	}

	return presenters.SuccessResponse(c, members, fiber.StatusOK, domain.MessageSuccessGetMembers)
}

func (h *householdHandler) CreateInvite(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInvite, domain.ErrParseUUID)
	}

	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInvite, domain.ErrParseUUID)
	}

	req := new(domain.CreateInviteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInvite, err)
	}

	invite, err := h.householdService.CreateInvite(c.Context(), *req, householdID, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrNotAMember {
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCreateInvite, err)
	}

	return presenters.SuccessResponse(c, invite, fiber.StatusCreated, domain.MessageSuccessCreateInvite)
}

func (h *householdHandler) AcceptInvite(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcceptInvite, domain.ErrParseUUID)
	}

	req := new(domain.AcceptInviteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcceptInvite, err)
	}

	householdID, err := h.householdService.AcceptInvite(c.Context(), *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		switch err {
		case domain.ErrInviteNotFound:
			status = fiber.StatusNotFound
		case domain.ErrInviteExpired, domain.ErrAlreadyMember:
			status = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedAcceptInvite, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"household_id": householdID}, fiber.StatusOK, domain.MessageSuccessAcceptInvite)
}

func (h *householdHandler) GetSettings(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSettings, domain.ErrParseUUID)
	}

	settings, err := h.householdService.GetSettings(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSettings, err)
	}

	return presenters.SuccessResponse(c, settings, fiber.StatusOK, domain.MessageSuccessGetSettings)
}

func (h *householdHandler) UpdateSettings(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSettings, domain.ErrParseUUID)
	}

	req := new(domain.UpdateSettingsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSettings, err)
	}

	settings, err := h.householdService.UpdateSettings(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSettings, err)
	}

	return presenters.SuccessResponse(c, settings, fiber.StatusOK, domain.MessageSuccessUpdateSettings)
}
