package renewals

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/madiaz/bizledger/app/models"
)

// AlertCache caches serialized projection results between invocations.
// Failures are treated as cache misses.
type AlertCache interface {
	Get(key string) (string, error)
	Set(key string, value interface{}, expiration time.Duration) error
}

const cacheTTL = 5 * time.Minute

// Service runs the renewal projection against injected readers. It fetches
// the three input collections concurrently, then computes in one pass.
type Service struct {
	reader Reader
	cache  AlertCache
}

// NewService creates a renewal service from an injected reader.
func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

// WithCache attaches an alert cache and returns the service.
func (s *Service) WithCache(cache AlertCache) *Service {
	s.cache = cache
	return s
}

// Upcoming projects renewal alerts due within lookaheadDays of now.
//
// Unlike the HTTP surface, which presents any failure as an empty list,
// Upcoming reports fetch failures through its error so callers can tell
// "no renewals" apart from "reads failed".
func (s *Service) Upcoming(ctx context.Context, now time.Time, lookaheadDays int) ([]Alert, error) {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}

	key := fmt.Sprintf("renewals:alerts:%s:%d", now.Format("2006-01-02"), lookaheadDays)
	if s.cache != nil {
		if raw, err := s.cache.Get(key); err == nil && raw != "" {
			var alerts []Alert
			if err := json.Unmarshal([]byte(raw), &alerts); err == nil {
				return alerts, nil
			}
		}
	}

	var (
		clients  []models.Client
		plans    []models.Plan
		invoices []models.Invoice
	)

	// The three reads are independent; fetch all, then compute.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.reader.ListClients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = s.reader.ListPlans(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = s.reader.ListInvoices(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("renewals: fetch inputs: %w", err)
	}

	alerts := Project(clients, plans, invoices, now, lookaheadDays)

	if s.cache != nil {
		if raw, err := json.Marshal(alerts); err == nil {
			_ = s.cache.Set(key, string(raw), cacheTTL)
		}
	}

	return alerts, nil
}
