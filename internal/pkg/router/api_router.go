package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/madiaz/bizledger/app/controllers"
	"github.com/madiaz/bizledger/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1", middleware.RequireAPISessionAuth)

	v1.Get("/me", controllers.HandleMe)

	// Clients and their plan subscriptions
	v1.Get("/clients", controllers.HandleListClients)
	v1.Post("/clients", controllers.HandleCreateClient)
	v1.Get("/clients/:id", controllers.HandleGetClient)
	v1.Put("/clients/:id", controllers.HandleUpdateClient)
	v1.Delete("/clients/:id", controllers.HandleDeleteClient)
	v1.Get("/clients/:id/invoices", controllers.HandleClientInvoices)
	v1.Post("/clients/:id/plans", controllers.HandleSubscribePlan)
	v1.Delete("/clients/:id/plans/:subscriptionId", controllers.HandleUnsubscribePlan)

	// Service plans
	v1.Get("/plans", controllers.HandleListPlans)
	v1.Post("/plans", controllers.HandleCreatePlan)
	v1.Get("/plans/:id", controllers.HandleGetPlan)
	v1.Put("/plans/:id", controllers.HandleUpdatePlan)
	v1.Delete("/plans/:id", controllers.HandleDeletePlan)

	// Invoices
	v1.Get("/invoices", controllers.HandleListInvoices)
	v1.Post("/invoices", controllers.HandleCreateInvoice)
	v1.Post("/invoices/overdue-sweep", controllers.HandleOverdueSweep)
	v1.Get("/invoices/:id", controllers.HandleGetInvoice)
	v1.Put("/invoices/:id/status", controllers.HandleUpdateInvoiceStatus)
	v1.Delete("/invoices/:id", controllers.HandleDeleteInvoice)

	// Expenses
	v1.Get("/expenses", controllers.HandleListExpenses)
	v1.Post("/expenses", controllers.HandleCreateExpense)
	v1.Get("/expenses/:id", controllers.HandleGetExpense)
	v1.Put("/expenses/:id", controllers.HandleUpdateExpense)
	v1.Delete("/expenses/:id", controllers.HandleDeleteExpense)

	// Tasks
	v1.Get("/tasks", controllers.HandleListTasks)
	v1.Get("/tasks/tree", controllers.HandleGetTaskTree)
	v1.Post("/tasks", controllers.HandleCreateTask)
	v1.Get("/tasks/:id", controllers.HandleGetTask)
	v1.Put("/tasks/:id", controllers.HandleUpdateTask)
	v1.Delete("/tasks/:id", controllers.HandleDeleteTask)

	// Knowledge base management
	v1.Post("/articles", controllers.HandleCreateArticle)
	v1.Put("/articles/:id", controllers.HandleUpdateArticle)
	v1.Delete("/articles/:id", controllers.HandleDeleteArticle)

	// Company settings (admin only)
	v1.Get("/settings", controllers.HandleGetSettings)
	v1.Put("/settings", middleware.RequireAdmin, controllers.HandleUpdateSettings)

	// Dashboard
	v1.Get("/dashboard/renewals", controllers.HandleRenewalAlerts)
	v1.Get("/dashboard/summary", controllers.HandleDashboardSummary)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
