package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

type planRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	Price            string `json:"price"`
	RecurrenceValue  int    `json:"recurrence_value"`
	RecurrencePeriod string `json:"recurrence_period"`
}

func (req *planRequest) apply(plan *models.Plan) error {
	if req.Name != "" {
		plan.Name = strings.TrimSpace(req.Name)
	}
	plan.Description = req.Description
	if req.Type != "" {
		plan.Type = req.Type
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			return err
		}
		plan.Price = price
	}
	plan.RecurrenceValue = req.RecurrenceValue
	plan.RecurrencePeriod = req.RecurrencePeriod
	return plan.Validate()
}

// HandleListPlans returns a page of service plans
func HandleListPlans(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalFactory().GetPlanRepository()

	plans, err := repo.List(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"plans":  plans,
		"total":  total,
		"offset": offset,
		"limit":  limit,
	})
}

// HandleGetPlan returns one plan
func HandleGetPlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid plan id")
	}

	plan, err := repository.GetGlobalFactory().GetPlanRepository().GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "plan not found")
	}

	return c.JSON(plan)
}

// HandleCreatePlan creates a new service plan
func HandleCreatePlan(c *fiber.Ctx) error {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	plan := &models.Plan{Type: models.PLAN_TYPE_RECURRING}
	if err := req.apply(plan); err != nil {
		return badRequest(c, err.Error())
	}
	if plan.IsRecurring() && !plan.HasValidRecurrence() {
		return badRequest(c, "recurring plans need a positive recurrence_value and a recurrence_period of days, months or years")
	}

	if err := repository.GetGlobalFactory().GetPlanRepository().Create(plan); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(plan)
}

// HandleUpdatePlan updates an existing plan
func HandleUpdatePlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid plan id")
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	plan, err := repo.GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "plan not found")
	}

	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.apply(plan); err != nil {
		return badRequest(c, err.Error())
	}
	if plan.IsRecurring() && !plan.HasValidRecurrence() {
		return badRequest(c, "recurring plans need a positive recurrence_value and a recurrence_period of days, months or years")
	}

	if err := repo.Update(plan); err != nil {
		return serverError(c, err)
	}

	return c.JSON(plan)
}

// HandleDeletePlan deletes a plan
func HandleDeletePlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid plan id")
	}

	if err := repository.GetGlobalFactory().GetPlanRepository().Delete(id); err != nil {
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
