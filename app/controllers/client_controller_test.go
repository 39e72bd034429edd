package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

func setupClientApp(t *testing.T) (*fiber.App, *repository.Repositories) {
	t.Helper()
	repos := repository.NewMemoryRepositories()
	repository.SetGlobalRepositoriesForTest(repos)

	app := fiber.New()
	app.Get("/clients", HandleListClients)
	app.Post("/clients", HandleCreateClient)
	app.Get("/clients/:id", HandleGetClient)
	app.Put("/clients/:id", HandleUpdateClient)
	app.Delete("/clients/:id", HandleDeleteClient)
	app.Post("/clients/:id/plans", HandleSubscribePlan)
	app.Delete("/clients/:id/plans/:subscriptionId", HandleUnsubscribePlan)
	app.Get("/clients/:id/invoices", HandleClientInvoices)
	return app, repos
}

func TestHandleCreateAndGetClient(t *testing.T) {
	app, _ := setupClientApp(t)

	req := httptest.NewRequest("POST", "/clients", strings.NewReader(`{"name":"Alpha GmbH","email":"alpha@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Client
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.CLIENT_STATUS_ACTIVE, created.Status, "status defaults to active")

	resp, err = app.Test(httptest.NewRequest("GET", "/clients/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleCreateClientRejectsInvalidBody(t *testing.T) {
	app, _ := setupClientApp(t)

	req := httptest.NewRequest("POST", "/clients", strings.NewReader(`{"name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleGetClientNotFound(t *testing.T) {
	app, _ := setupClientApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/clients/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/clients/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSubscribePlan(t *testing.T) {
	app, repos := setupClientApp(t)

	client := &models.Client{Name: "Alpha GmbH", Status: models.CLIENT_STATUS_ACTIVE}
	require.NoError(t, repos.Client.Create(client))
	plan := &models.Plan{Name: "Hosting", Type: models.PLAN_TYPE_RECURRING, RecurrenceValue: 1, RecurrencePeriod: models.RECURRENCE_PERIOD_MONTHS}
	require.NoError(t, repos.Plan.Create(plan))

	req := httptest.NewRequest("POST", "/clients/1/plans", strings.NewReader(`{"plan_id":1,"activation_date":"2024-06-01T00:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var sub models.ClientPlan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sub))
	assert.Equal(t, client.ID, sub.ClientID)
	assert.Equal(t, plan.ID, sub.PlanID)

	// Unknown plan is rejected.
	req = httptest.NewRequest("POST", "/clients/1/plans", strings.NewReader(`{"plan_id":99}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Unsubscribe removes the row again.
	resp, err = app.Test(httptest.NewRequest("DELETE", "/clients/1/plans/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	got, err := repos.Client.GetByID(client.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Plans)
}

func TestHandleListClientsSearch(t *testing.T) {
	app, repos := setupClientApp(t)
	require.NoError(t, repos.Client.Create(&models.Client{Name: "Alpha GmbH", Status: models.CLIENT_STATUS_ACTIVE}))
	require.NoError(t, repos.Client.Create(&models.Client{Name: "Beta Studio", Status: models.CLIENT_STATUS_ACTIVE}))

	resp, err := app.Test(httptest.NewRequest("GET", "/clients?q=beta", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Clients []models.Client `json:"clients"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Clients, 1)
	assert.Equal(t, "Beta Studio", body.Clients[0].Name)
}
