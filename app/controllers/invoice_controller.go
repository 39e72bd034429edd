package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

type invoiceRequest struct {
	ClientID  uint   `json:"client_id"`
	PlanID    *uint  `json:"plan_id"`
	Amount    string `json:"amount"`
	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`
	Notes     string `json:"notes"`
}

type invoiceStatusRequest struct {
	Status string `json:"status"`
}

// HandleListInvoices returns a page of invoices
func HandleListInvoices(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalFactory().GetInvoiceRepository()

	invoices, err := repo.List(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"invoices": invoices,
		"total":    total,
		"offset":   offset,
		"limit":    limit,
	})
}

// HandleGetInvoice returns one invoice
func HandleGetInvoice(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	invoice, err := repository.GetGlobalFactory().GetInvoiceRepository().GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "invoice not found")
	}

	return c.JSON(invoice)
}

// HandleCreateInvoice creates a new invoice. The due date defaults to the
// issue date plus the configured company invoice_due_days.
func HandleCreateInvoice(c *fiber.Ctx) error {
	var req invoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ClientID == 0 {
		return badRequest(c, "client_id is required")
	}

	factory := repository.GetGlobalFactory()
	if _, err := factory.GetClientRepository().GetByID(req.ClientID); err != nil {
		return respondRepoError(c, err, "client not found")
	}
	if req.PlanID != nil {
		if _, err := factory.GetPlanRepository().GetByID(*req.PlanID); err != nil {
			return respondRepoError(c, err, "plan not found")
		}
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return badRequest(c, "amount must be a non-negative decimal")
	}

	issueDate := time.Now()
	if req.IssueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.IssueDate)
		if err != nil {
			return badRequest(c, "issue_date must be RFC3339")
		}
		issueDate = parsed
	}

	settings, err := factory.GetSettingRepository().Get()
	if err != nil {
		return serverError(c, err)
	}
	dueDate := issueDate.AddDate(0, 0, settings.InvoiceDueDays)
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			return badRequest(c, "due_date must be RFC3339")
		}
		dueDate = parsed
	}

	invoice := &models.Invoice{
		Number:    models.NewInvoiceNumber(),
		ClientID:  req.ClientID,
		PlanID:    req.PlanID,
		Amount:    amount,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Status:    models.INVOICE_STATUS_PENDING,
		Notes:     req.Notes,
	}
	if err := factory.GetInvoiceRepository().Create(invoice); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// HandleUpdateInvoiceStatus transitions an invoice between pending, paid
// and overdue.
func HandleUpdateInvoiceStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	var req invoiceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	switch req.Status {
	case models.INVOICE_STATUS_PENDING, models.INVOICE_STATUS_PAID, models.INVOICE_STATUS_OVERDUE:
	default:
		return badRequest(c, "status must be pending, paid or overdue")
	}

	repo := repository.GetGlobalFactory().GetInvoiceRepository()
	invoice, err := repo.GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "invoice not found")
	}

	invoice.Status = req.Status
	if err := repo.Update(invoice); err != nil {
		return serverError(c, err)
	}

	return c.JSON(invoice)
}

// HandleDeleteInvoice deletes an invoice
func HandleDeleteInvoice(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	if err := repository.GetGlobalFactory().GetInvoiceRepository().Delete(id); err != nil {
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleOverdueSweep flips pending invoices past their due date to overdue
func HandleOverdueSweep(c *fiber.Ctx) error {
	changed, err := repository.GetGlobalFactory().GetInvoiceRepository().MarkOverdue(time.Now())
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"marked_overdue": changed})
}
