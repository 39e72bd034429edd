package renewals

import "time"

// DefaultLookaheadDays is the forward window within which a projected due
// date triggers an alert.
const DefaultLookaheadDays = 5

// Alert is a projected upcoming-or-due billing event for a client's
// recurring plan subscription that is not yet invoiced. Alerts are produced
// fresh on every projection and never persisted.
type Alert struct {
	ClientID    uint      `json:"client_id"`
	ClientName  string    `json:"client_name"`
	PlanID      uint      `json:"plan_id"`
	PlanName    string    `json:"plan_name"`
	NextDueDate time.Time `json:"next_due_date"`
}
