package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

type expenseRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	IncurredAt  string `json:"incurred_at"`
}

func (req *expenseRequest) apply(expense *models.Expense) error {
	if req.Category != "" {
		expense.Category = strings.TrimSpace(req.Category)
	}
	expense.Description = req.Description
	if req.Amount != "" {
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			return err
		}
		expense.Amount = amount
	}
	if req.IncurredAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.IncurredAt)
		if err != nil {
			return err
		}
		expense.IncurredAt = parsed
	}
	return expense.Validate()
}

// HandleListExpenses returns a page of expenses
func HandleListExpenses(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalFactory().GetExpenseRepository()

	expenses, err := repo.List(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"expenses": expenses,
		"total":    total,
		"offset":   offset,
		"limit":    limit,
	})
}

// HandleGetExpense returns one expense
func HandleGetExpense(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid expense id")
	}

	expense, err := repository.GetGlobalFactory().GetExpenseRepository().GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "expense not found")
	}

	return c.JSON(expense)
}

// HandleCreateExpense creates a new expense
func HandleCreateExpense(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	expense := &models.Expense{IncurredAt: time.Now()}
	if err := req.apply(expense); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repository.GetGlobalFactory().GetExpenseRepository().Create(expense); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(expense)
}

// HandleUpdateExpense updates an existing expense
func HandleUpdateExpense(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid expense id")
	}

	repo := repository.GetGlobalFactory().GetExpenseRepository()
	expense, err := repo.GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "expense not found")
	}

	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.apply(expense); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.Update(expense); err != nil {
		return serverError(c, err)
	}

	return c.JSON(expense)
}

// HandleDeleteExpense deletes an expense
func HandleDeleteExpense(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid expense id")
	}

	if err := repository.GetGlobalFactory().GetExpenseRepository().Delete(id); err != nil {
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
