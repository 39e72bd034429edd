package renewals

import (
	"sort"
	"time"

	"github.com/madiaz/bizledger/app/models"
)

type invoiceKey struct {
	clientID uint
	planID   uint
}

// Project computes renewal alerts for every active client's recurring plan
// subscription whose next billing date falls inside the lookahead window
// [now, now+lookaheadDays) and is not already covered by an invoice.
//
// The function is pure: it never touches storage and may be called
// concurrently. Subscriptions whose plan cannot be resolved, is one-time,
// or carries unusable recurrence fields are skipped silently.
func Project(clients []models.Client, plans []models.Plan, invoices []models.Invoice, now time.Time, lookaheadDays int) []Alert {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	windowEnd := now.AddDate(0, 0, lookaheadDays)

	plansByID := make(map[uint]models.Plan, len(plans))
	for _, p := range plans {
		plansByID[p.ID] = p
	}

	history := make(map[invoiceKey][]models.Invoice)
	for _, inv := range invoices {
		if inv.PlanID == nil {
			continue
		}
		k := invoiceKey{clientID: inv.ClientID, planID: *inv.PlanID}
		history[k] = append(history[k], inv)
	}
	for k := range history {
		sort.Slice(history[k], func(i, j int) bool {
			return history[k][i].DueDate.After(history[k][j].DueDate)
		})
	}

	var alerts []Alert
	for _, client := range clients {
		if !client.IsActive() {
			continue
		}
		for _, sub := range client.Plans {
			plan, ok := plansByID[sub.PlanID]
			if !ok || !plan.HasValidRecurrence() {
				continue
			}

			past := history[invoiceKey{clientID: client.ID, planID: sub.PlanID}]
			if len(past) == 0 {
				// Never invoiced: the activation date itself is the baseline
				// due date. Note there is deliberately no lower bound here; a
				// long-past activation date keeps alerting until an invoice
				// is recorded (see DESIGN.md).
				if sub.ActivationDate.Before(windowEnd) {
					alerts = append(alerts, Alert{
						ClientID:    client.ID,
						ClientName:  client.Name,
						PlanID:      plan.ID,
						PlanName:    plan.Name,
						NextDueDate: sub.ActivationDate,
					})
				}
				continue
			}

			next := nextDueDate(past[0].DueDate, plan)

			// Strictly inside the half-open window: already-passed dates are
			// not re-alerted through this branch.
			if !now.Before(next) || !next.Before(windowEnd) {
				continue
			}
			if invoicedOn(past, next) {
				continue
			}

			alerts = append(alerts, Alert{
				ClientID:    client.ID,
				ClientName:  client.Name,
				PlanID:      plan.ID,
				PlanName:    plan.Name,
				NextDueDate: next,
			})
		}
	}

	return alerts
}

// nextDueDate advances a due date by one recurrence cycle. Months and years
// use flat 30- and 365-day multipliers rather than calendar arithmetic.
func nextDueDate(last time.Time, plan models.Plan) time.Time {
	switch plan.RecurrencePeriod {
	case models.RECURRENCE_PERIOD_DAYS:
		return last.AddDate(0, 0, plan.RecurrenceValue)
	case models.RECURRENCE_PERIOD_MONTHS:
		return last.AddDate(0, 0, plan.RecurrenceValue*30)
	case models.RECURRENCE_PERIOD_YEARS:
		return last.AddDate(0, 0, plan.RecurrenceValue*365)
	default:
		return last
	}
}

// invoicedOn reports whether any invoice in the history falls on the same
// calendar day as the computed next due date. This is the de-duplication
// rule: an existing invoice already covers that billing cycle.
func invoicedOn(history []models.Invoice, next time.Time) bool {
	day := startOfDay(next)
	for _, inv := range history {
		if startOfDay(inv.DueDate).Equal(day) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
