package renewals

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/madiaz/bizledger/app/models"
)

type stubReader struct {
	clients  []models.Client
	plans    []models.Plan
	invoices []models.Invoice

	clientsErr  error
	plansErr    error
	invoicesErr error
}

func (s *stubReader) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.clients, s.clientsErr
}

func (s *stubReader) ListPlans(ctx context.Context) ([]models.Plan, error) {
	return s.plans, s.plansErr
}

func (s *stubReader) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.invoices, s.invoicesErr
}

type fakeCache struct {
	entries map[string]string
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(key string) (string, error) {
	v, ok := f.entries[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return v, nil
}

func (f *fakeCache) Set(key string, value interface{}, expiration time.Duration) error {
	f.entries[key] = value.(string)
	f.sets++
	return nil
}

func TestServiceUpcoming(t *testing.T) {
	reader := &stubReader{
		clients: []models.Client{
			activeClient(1, "C1", models.ClientPlan{ClientID: 1, PlanID: 10, ActivationDate: date(2024, 1, 1)}),
		},
		plans: []models.Plan{recurringPlan(10, "P1", 30, models.RECURRENCE_PERIOD_DAYS)},
		invoices: []models.Invoice{
			{ID: 1, ClientID: 1, PlanID: planID(10), DueDate: date(2024, 5, 3)},
		},
	}

	svc := NewService(reader)
	alerts, err := svc.Upcoming(context.Background(), date(2024, 6, 1), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 1 || !alerts[0].NextDueDate.Equal(date(2024, 6, 2)) {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
}

func TestServiceUpcomingReportsFetchFailure(t *testing.T) {
	wantErr := errors.New("connection refused")
	reader := &stubReader{invoicesErr: wantErr}

	svc := NewService(reader)
	alerts, err := svc.Upcoming(context.Background(), date(2024, 6, 1), 5)
	if err == nil {
		t.Fatal("expected an error when a read fails")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
	if alerts != nil {
		t.Fatalf("expected nil alerts on failure, got %+v", alerts)
	}
}

func TestServiceUpcomingUsesCache(t *testing.T) {
	reader := &stubReader{
		clients: []models.Client{
			activeClient(1, "C1", models.ClientPlan{ClientID: 1, PlanID: 10, ActivationDate: date(2024, 1, 1)}),
		},
		plans: []models.Plan{recurringPlan(10, "P1", 30, models.RECURRENCE_PERIOD_DAYS)},
		invoices: []models.Invoice{
			{ID: 1, ClientID: 1, PlanID: planID(10), DueDate: date(2024, 5, 3)},
		},
	}
	cache := newFakeCache()
	svc := NewService(reader).WithCache(cache)
	now := date(2024, 6, 1)

	first, err := svc.Upcoming(context.Background(), now, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected projection to be cached once, got %d sets", cache.sets)
	}

	// Break the reader: a second call for the same key must be served from
	// the cache without touching storage.
	reader.clientsErr = errors.New("storage gone")
	second, err := svc.Upcoming(context.Background(), now, 5)
	if err != nil {
		t.Fatalf("expected cache hit, got error: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("cached result diverged: %+v vs %+v", second, first)
	}
}

func TestServiceUpcomingIgnoresCorruptCacheEntry(t *testing.T) {
	reader := &stubReader{
		clients: []models.Client{
			activeClient(1, "C1", models.ClientPlan{ClientID: 1, PlanID: 10, ActivationDate: date(2024, 6, 2)}),
		},
		plans: []models.Plan{recurringPlan(10, "P1", 30, models.RECURRENCE_PERIOD_DAYS)},
	}
	cache := newFakeCache()
	now := date(2024, 6, 1)
	cache.entries["renewals:alerts:2024-06-01:5"] = "{not json"

	svc := NewService(reader).WithCache(cache)
	alerts, err := svc.Upcoming(context.Background(), now, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected recomputed projection, got %+v", alerts)
	}
}

func TestServiceCacheRoundTrip(t *testing.T) {
	alerts := []Alert{{ClientID: 1, ClientName: "C1", PlanID: 10, PlanName: "P1", NextDueDate: date(2024, 6, 2)}}
	raw, err := json.Marshal(alerts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded []Alert
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 || !decoded[0].NextDueDate.Equal(alerts[0].NextDueDate) {
		t.Fatalf("cache payload did not round-trip: %+v", decoded)
	}
}
