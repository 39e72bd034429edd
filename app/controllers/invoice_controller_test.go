package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

func setupInvoiceApp(t *testing.T) (*fiber.App, *repository.Repositories) {
	t.Helper()
	repos := repository.NewMemoryRepositories()
	repository.SetGlobalRepositoriesForTest(repos)

	app := fiber.New()
	app.Get("/invoices", HandleListInvoices)
	app.Post("/invoices", HandleCreateInvoice)
	app.Post("/invoices/overdue-sweep", HandleOverdueSweep)
	app.Get("/invoices/:id", HandleGetInvoice)
	app.Put("/invoices/:id/status", HandleUpdateInvoiceStatus)
	app.Delete("/invoices/:id", HandleDeleteInvoice)
	return app, repos
}

func TestHandleCreateInvoiceDefaultsDueDate(t *testing.T) {
	app, repos := setupInvoiceApp(t)
	require.NoError(t, repos.Client.Create(&models.Client{Name: "Alpha GmbH", Status: models.CLIENT_STATUS_ACTIVE}))
	require.NoError(t, repos.Setting.Save(&models.CompanySettings{
		CompanyName:      "Acme",
		Currency:         "EUR",
		InvoiceDueDays:   10,
		RenewalLookahead: 5,
	}))

	req := httptest.NewRequest("POST", "/invoices", strings.NewReader(`{"client_id":1,"amount":"150.50","issue_date":"2024-06-01T00:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var inv models.Invoice
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&inv))
	assert.True(t, strings.HasPrefix(inv.Number, "INV-"))
	assert.Equal(t, models.INVOICE_STATUS_PENDING, inv.Status)
	assert.True(t, inv.Amount.Equal(decimal.RequireFromString("150.50")))
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), inv.DueDate.UTC(), "due date is issue date plus invoice_due_days")
}

func TestHandleCreateInvoiceValidation(t *testing.T) {
	app, repos := setupInvoiceApp(t)
	require.NoError(t, repos.Client.Create(&models.Client{Name: "Alpha GmbH", Status: models.CLIENT_STATUS_ACTIVE}))

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "missing client", body: `{"amount":"10"}`, want: fiber.StatusBadRequest},
		{name: "unknown client", body: `{"client_id":99,"amount":"10"}`, want: fiber.StatusNotFound},
		{name: "unknown plan", body: `{"client_id":1,"plan_id":99,"amount":"10"}`, want: fiber.StatusNotFound},
		{name: "negative amount", body: `{"client_id":1,"amount":"-5"}`, want: fiber.StatusBadRequest},
		{name: "garbage amount", body: `{"client_id":1,"amount":"ten"}`, want: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/invoices", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestHandleUpdateInvoiceStatus(t *testing.T) {
	app, repos := setupInvoiceApp(t)
	require.NoError(t, repos.Invoice.Create(&models.Invoice{
		Number:   "INV-1",
		ClientID: 1,
		DueDate:  time.Now(),
		Status:   models.INVOICE_STATUS_PENDING,
	}))

	req := httptest.NewRequest("PUT", "/invoices/1/status", strings.NewReader(`{"status":"paid"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := repos.Invoice.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.INVOICE_STATUS_PAID, got.Status)

	req = httptest.NewRequest("PUT", "/invoices/1/status", strings.NewReader(`{"status":"void"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleOverdueSweep(t *testing.T) {
	app, repos := setupInvoiceApp(t)
	require.NoError(t, repos.Invoice.Create(&models.Invoice{
		Number:   "INV-OLD",
		ClientID: 1,
		DueDate:  time.Now().AddDate(0, 0, -3),
		Status:   models.INVOICE_STATUS_PENDING,
	}))
	require.NoError(t, repos.Invoice.Create(&models.Invoice{
		Number:   "INV-NEW",
		ClientID: 1,
		DueDate:  time.Now().AddDate(0, 0, 3),
		Status:   models.INVOICE_STATUS_PENDING,
	}))

	resp, err := app.Test(httptest.NewRequest("POST", "/invoices/overdue-sweep", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body["marked_overdue"])
}
