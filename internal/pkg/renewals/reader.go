package renewals

import (
	"context"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

// Reader exposes the three snapshot reads the projection depends on.
type Reader interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
}

// repoReader adapts the repository layer to the Reader interface.
type repoReader struct {
	repos *repository.Repositories
}

// NewRepositoryReader wraps the application repositories as a Reader.
func NewRepositoryReader(repos *repository.Repositories) Reader {
	return &repoReader{repos: repos}
}

func (r *repoReader) ListClients(ctx context.Context) ([]models.Client, error) {
	_ = ctx
	return r.repos.Client.ListAll()
}

func (r *repoReader) ListPlans(ctx context.Context) ([]models.Plan, error) {
	_ = ctx
	return r.repos.Plan.ListAll()
}

func (r *repoReader) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	_ = ctx
	return r.repos.Invoice.ListAll()
}
