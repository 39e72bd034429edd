package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

type clientRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type subscribePlanRequest struct {
	PlanID         uint   `json:"plan_id"`
	ActivationDate string `json:"activation_date"`
}

// HandleListClients returns a page of clients, optionally filtered by a
// search query.
func HandleListClients(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetClientRepository()

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		clients, err := repo.Search(q)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"clients": clients})
	}

	offset, limit := parsePagination(c)
	clients, err := repo.List(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"clients": clients,
		"total":   total,
		"offset":  offset,
		"limit":   limit,
	})
}

// HandleGetClient returns one client with its plan subscriptions
func HandleGetClient(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	client, err := repository.GetGlobalFactory().GetClientRepository().GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "client not found")
	}

	return c.JSON(client)
}

// HandleCreateClient creates a new client
func HandleCreateClient(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status := req.Status
	if status == "" {
		status = models.CLIENT_STATUS_ACTIVE
	}

	client := &models.Client{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Phone:  strings.TrimSpace(req.Phone),
		Status: status,
		Notes:  req.Notes,
	}
	if err := client.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repository.GetGlobalFactory().GetClientRepository().Create(client); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

// HandleUpdateClient updates an existing client
func HandleUpdateClient(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	repo := repository.GetGlobalFactory().GetClientRepository()
	client, err := repo.GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "client not found")
	}

	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if req.Name != "" {
		client.Name = strings.TrimSpace(req.Name)
	}
	client.Email = strings.TrimSpace(req.Email)
	client.Phone = strings.TrimSpace(req.Phone)
	if req.Status != "" {
		client.Status = req.Status
	}
	client.Notes = req.Notes

	if err := client.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := repo.Update(client); err != nil {
		return serverError(c, err)
	}

	return c.JSON(client)
}

// HandleDeleteClient deletes a client
func HandleDeleteClient(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	if err := repository.GetGlobalFactory().GetClientRepository().Delete(id); err != nil {
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSubscribePlan records a new plan subscription for a client
func HandleSubscribePlan(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var req subscribePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.PlanID == 0 {
		return badRequest(c, "plan_id is required")
	}

	factory := repository.GetGlobalFactory()
	if _, err := factory.GetClientRepository().GetByID(clientID); err != nil {
		return respondRepoError(c, err, "client not found")
	}
	if _, err := factory.GetPlanRepository().GetByID(req.PlanID); err != nil {
		return respondRepoError(c, err, "plan not found")
	}

	activation := time.Now()
	if req.ActivationDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.ActivationDate)
		if err != nil {
			return badRequest(c, "activation_date must be RFC3339")
		}
		activation = parsed
	}

	sub := &models.ClientPlan{
		ClientID:       clientID,
		PlanID:         req.PlanID,
		ActivationDate: activation,
	}
	if err := factory.GetClientRepository().AddPlan(sub); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(sub)
}

// HandleUnsubscribePlan removes one subscription row of a client
func HandleUnsubscribePlan(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid client id")
	}
	subID, err := parseIDParam(c, "subscriptionId")
	if err != nil {
		return badRequest(c, "invalid subscription id")
	}

	if err := repository.GetGlobalFactory().GetClientRepository().RemovePlan(clientID, subID); err != nil {
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClientInvoices lists all invoices of one client
func HandleClientInvoices(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	invoices, err := repository.GetGlobalFactory().GetInvoiceRepository().ListByClient(clientID)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"invoices": invoices})
}
