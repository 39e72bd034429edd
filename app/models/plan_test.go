package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanHasValidRecurrence(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		want bool
	}{
		{
			name: "monthly recurring",
			plan: Plan{Type: PLAN_TYPE_RECURRING, RecurrenceValue: 1, RecurrencePeriod: RECURRENCE_PERIOD_MONTHS},
			want: true,
		},
		{
			name: "every 14 days",
			plan: Plan{Type: PLAN_TYPE_RECURRING, RecurrenceValue: 14, RecurrencePeriod: RECURRENCE_PERIOD_DAYS},
			want: true,
		},
		{
			name: "one-time plan",
			plan: Plan{Type: PLAN_TYPE_ONE_TIME, RecurrenceValue: 1, RecurrencePeriod: RECURRENCE_PERIOD_MONTHS},
			want: false,
		},
		{
			name: "zero recurrence value",
			plan: Plan{Type: PLAN_TYPE_RECURRING, RecurrenceValue: 0, RecurrencePeriod: RECURRENCE_PERIOD_DAYS},
			want: false,
		},
		{
			name: "negative recurrence value",
			plan: Plan{Type: PLAN_TYPE_RECURRING, RecurrenceValue: -3, RecurrencePeriod: RECURRENCE_PERIOD_DAYS},
			want: false,
		},
		{
			name: "unknown period",
			plan: Plan{Type: PLAN_TYPE_RECURRING, RecurrenceValue: 2, RecurrencePeriod: "weeks"},
			want: false,
		},
		{
			name: "missing period",
			plan: Plan{Type: PLAN_TYPE_RECURRING, RecurrenceValue: 2},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plan.HasValidRecurrence())
		})
	}
}

func TestPlanIsRecurring(t *testing.T) {
	assert.True(t, (&Plan{Type: PLAN_TYPE_RECURRING}).IsRecurring())
	assert.False(t, (&Plan{Type: PLAN_TYPE_ONE_TIME}).IsRecurring())
}
