package controllers

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/madiaz/bizledger/app/repository"
	"github.com/madiaz/bizledger/internal/pkg/cache"
	"github.com/madiaz/bizledger/internal/pkg/renewals"
)

// redisAlertCache adapts the cache package to the renewals alert cache.
type redisAlertCache struct{}

func (redisAlertCache) Get(key string) (string, error) {
	return cache.Get(key)
}

func (redisAlertCache) Set(key string, value interface{}, expiration time.Duration) error {
	return cache.Set(key, value, expiration)
}

var (
	renewalSvc  *renewals.Service
	renewalOnce sync.Once
)

func getRenewalService() *renewals.Service {
	renewalOnce.Do(func() {
		svc := renewals.NewService(renewals.NewRepositoryReader(repository.GetGlobalRepositories()))
		if repository.DriverFromEnv() != repository.DriverMemory {
			svc = svc.WithCache(redisAlertCache{})
		}
		renewalSvc = svc
	})
	return renewalSvc
}

// SetRenewalServiceForTest swaps the renewal service (tests only)
func SetRenewalServiceForTest(svc *renewals.Service) {
	renewalOnce.Do(func() {})
	renewalSvc = svc
}

// HandleRenewalAlerts returns upcoming plan renewals inside the lookahead
// window. A fetch failure is logged and presented as an empty list; the UI
// shows "no renewals" either way.
func HandleRenewalAlerts(c *fiber.Ctx) error {
	settings, err := repository.GetGlobalFactory().GetSettingRepository().Get()
	if err != nil {
		return serverError(c, err)
	}

	lookahead := settings.RenewalLookahead
	if lookahead <= 0 {
		lookahead = renewals.DefaultLookaheadDays
	}
	if v := c.QueryInt("lookahead_days", 0); v > 0 {
		lookahead = v
	}

	now := time.Now()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "now must be RFC3339")
		}
		now = parsed
	}

	alerts, err := getRenewalService().Upcoming(c.Context(), now, lookahead)
	if err != nil {
		log.Printf("renewal projection failed: %v", err)
		alerts = []renewals.Alert{}
	}
	if alerts == nil {
		alerts = []renewals.Alert{}
	}

	return c.JSON(fiber.Map{
		"alerts":         alerts,
		"lookahead_days": lookahead,
	})
}

// HandleDashboardSummary returns headline counts and totals
func HandleDashboardSummary(c *fiber.Ctx) error {
	factory := repository.GetGlobalFactory()

	clients, err := factory.GetClientRepository().Count()
	if err != nil {
		return serverError(c, err)
	}
	plans, err := factory.GetPlanRepository().Count()
	if err != nil {
		return serverError(c, err)
	}
	invoices, err := factory.GetInvoiceRepository().Count()
	if err != nil {
		return serverError(c, err)
	}
	tasks, err := factory.GetTaskRepository().Count()
	if err != nil {
		return serverError(c, err)
	}

	outstanding, err := factory.GetInvoiceRepository().OutstandingTotal()
	if err != nil {
		return serverError(c, err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthExpenses, err := factory.GetExpenseRepository().TotalBetween(monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"clients":             clients,
		"plans":               plans,
		"invoices":            invoices,
		"tasks":               tasks,
		"outstanding_total":   outstanding,
		"expenses_this_month": monthExpenses,
	})
}
