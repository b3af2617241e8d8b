package handlers

import (
	"pantryplanner/domain"
	"pantryplanner/internal/api/presenters"
	"pantryplanner/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	MealPlanHandler interface {
		GetMealPlans(c *fiber.Ctx) error
		AddMealPlan(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
		ValidateCanCook(c *fiber.Ctx) error
		CookMeal(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlans, domain.ErrParseUUID)
	}

	snapshot, err := h.mealPlanService.GetMealPlans(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"meal_plans":           snapshot.MealPlans,
		"reserved_ingredients": snapshot.ReservedIngredients,
	}, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) AddMealPlan(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealPlan, domain.ErrParseUUID)
	}

	req := new(domain.AddMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealPlan, err)
	}

	mealID, snapshot, err := h.mealPlanService.AddMealPlan(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealPlan, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"id":            mealID,
		"shopping_list": snapshot.ShoppingList,
	}, fiber.StatusCreated, domain.MessageSuccessAddMealPlan)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, domain.ErrParseUUID)
	}

	mealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, domain.ErrParseUUID)
	}

	req := new(domain.UpdateMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	if _, err := h.mealPlanService.UpdateMealPlan(c.Context(), mealID, *req, householdID); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrMealNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealPlan, domain.ErrParseUUID)
	}

	mealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealPlan, domain.ErrParseUUID)
	}

	if _, err := h.mealPlanService.DeleteMealPlan(c.Context(), mealID, householdID); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrMealNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}

func (h *mealPlanHandler) ValidateCanCook(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookMeal, domain.ErrParseUUID)
	}

	mealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookMeal, domain.ErrParseUUID)
	}

	validation, err := h.mealPlanService.ValidateCanCook(c.Context(), mealID, householdID)
	if err != nil {
		status := fiber.StatusInternalServerError
		if err == domain.ErrMealNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCookMeal, err)
	}

	return presenters.SuccessResponse(c, validation, fiber.StatusOK, domain.MessageSuccessValidateCook)
}

func (h *mealPlanHandler) CookMeal(c *fiber.Ctx) error {
	householdID, err := householdIDFromLocals(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookMeal, domain.ErrParseUUID)
	}

	mealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookMeal, domain.ErrParseUUID)
	}

	force := c.QueryBool("force")

	validation, snapshot, err := h.mealPlanService.CookMeal(c.Context(), mealID, force, householdID)
	if err != nil {
		switch err {
		case domain.ErrInsufficientStock:
			// the shortfall detail goes back so the client can offer a force cook
			return c.Status(fiber.StatusConflict).JSON(presenters.Response{
				Status:  false,
				Message: domain.MessageFailedCookMeal,
				Data:    validation,
				Error:   err.Error(),
			})
		case domain.ErrMealNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCookMeal, err)
		case domain.ErrMealAlreadyCooked:
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCookMeal, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookMeal, err)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"validation":    validation,
		"pantry_items":  snapshot.PantryItems,
		"shopping_list": snapshot.ShoppingList,
	}, fiber.StatusOK, domain.MessageSuccessCookMeal)
}
