package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryClientRepository(t *testing.T) {
	repo := NewMemoryClientRepository()

	alpha := &models.Client{Name: "Alpha GmbH", Email: "alpha@example.com", Status: models.CLIENT_STATUS_ACTIVE}
	beta := &models.Client{Name: "Beta Studio", Email: "beta@example.com", Status: models.CLIENT_STATUS_ACTIVE}
	require.NoError(t, repo.Create(alpha))
	require.NoError(t, repo.Create(beta))
	assert.NotZero(t, alpha.ID)
	assert.NotEqual(t, alpha.ID, beta.ID)

	got, err := repo.GetByID(alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha GmbH", got.Name)

	_, err = repo.GetByID(999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	clients, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Alpha GmbH", clients[0].Name, "expected name ordering")

	found, err := repo.Search("beta")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, beta.ID, found[0].ID)

	alpha.Notes = "priority client"
	require.NoError(t, repo.Update(alpha))
	got, err = repo.GetByID(alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, "priority client", got.Notes)

	require.NoError(t, repo.Delete(beta.ID))
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryClientRepositorySubscriptions(t *testing.T) {
	repo := NewMemoryClientRepository()

	client := &models.Client{Name: "Alpha GmbH", Status: models.CLIENT_STATUS_ACTIVE}
	require.NoError(t, repo.Create(client))

	sub := &models.ClientPlan{ClientID: client.ID, PlanID: 10, ActivationDate: day(2024, 1, 1)}
	require.NoError(t, repo.AddPlan(sub))
	assert.NotZero(t, sub.ID)

	err := repo.AddPlan(&models.ClientPlan{ClientID: 999, PlanID: 10, ActivationDate: day(2024, 1, 1)})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	got, err := repo.GetByID(client.ID)
	require.NoError(t, err)
	require.Len(t, got.Plans, 1)
	assert.Equal(t, uint(10), got.Plans[0].PlanID)

	// Removing with the wrong client leaves the subscription in place.
	require.NoError(t, repo.RemovePlan(999, sub.ID))
	got, _ = repo.GetByID(client.ID)
	assert.Len(t, got.Plans, 1)

	require.NoError(t, repo.RemovePlan(client.ID, sub.ID))
	got, _ = repo.GetByID(client.ID)
	assert.Empty(t, got.Plans)
}

func TestMemoryPlanRepositoryPagination(t *testing.T) {
	repo := NewMemoryPlanRepository()
	names := []string{"Backup", "Hosting", "Maintenance", "Monitoring"}
	for _, n := range names {
		require.NoError(t, repo.Create(&models.Plan{Name: n, Type: models.PLAN_TYPE_RECURRING}))
	}

	page, err := repo.List(1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Hosting", page[0].Name)
	assert.Equal(t, "Maintenance", page[1].Name)

	empty, err := repo.List(10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryInvoiceRepositoryMarkOverdue(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	now := day(2024, 6, 1)

	pastDue := &models.Invoice{Number: "INV-A", ClientID: 1, DueDate: day(2024, 5, 1), Status: models.INVOICE_STATUS_PENDING, Amount: decimal.NewFromInt(100)}
	notDue := &models.Invoice{Number: "INV-B", ClientID: 1, DueDate: day(2024, 7, 1), Status: models.INVOICE_STATUS_PENDING, Amount: decimal.NewFromInt(50)}
	paid := &models.Invoice{Number: "INV-C", ClientID: 1, DueDate: day(2024, 4, 1), Status: models.INVOICE_STATUS_PAID, Amount: decimal.NewFromInt(75)}
	for _, inv := range []*models.Invoice{pastDue, notDue, paid} {
		require.NoError(t, repo.Create(inv))
	}

	changed, err := repo.MarkOverdue(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	got, err := repo.GetByID(pastDue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.INVOICE_STATUS_OVERDUE, got.Status)

	got, err = repo.GetByID(paid.ID)
	require.NoError(t, err)
	assert.Equal(t, models.INVOICE_STATUS_PAID, got.Status)

	// Outstanding covers pending and overdue, never paid.
	total, err := repo.OutstandingTotal()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(150)), "got %s", total)
}

func TestMemoryInvoiceRepositoryLookups(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	inv := &models.Invoice{Number: "INV-XYZ", ClientID: 7, DueDate: day(2024, 6, 1), Status: models.INVOICE_STATUS_PENDING}
	require.NoError(t, repo.Create(inv))
	require.NoError(t, repo.Create(&models.Invoice{Number: "INV-OTHER", ClientID: 8, DueDate: day(2024, 6, 2), Status: models.INVOICE_STATUS_PENDING}))

	got, err := repo.GetByNumber("INV-XYZ")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	_, err = repo.GetByNumber("INV-MISSING")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	byClient, err := repo.ListByClient(7)
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, "INV-XYZ", byClient[0].Number)
}

func TestMemoryExpenseRepositoryTotalBetween(t *testing.T) {
	repo := NewMemoryExpenseRepository()
	rows := []models.Expense{
		{Description: "Domain", Amount: decimal.NewFromInt(20), IncurredAt: day(2024, 5, 31)},
		{Description: "Server", Amount: decimal.NewFromInt(40), IncurredAt: day(2024, 6, 1)},
		{Description: "Laptop", Amount: decimal.NewFromInt(900), IncurredAt: day(2024, 6, 30)},
		{Description: "July rent", Amount: decimal.NewFromInt(300), IncurredAt: day(2024, 7, 1)},
	}
	for i := range rows {
		require.NoError(t, repo.Create(&rows[i]))
	}

	// Half-open range: the start day counts, the end day does not.
	total, err := repo.TotalBetween(day(2024, 6, 1), day(2024, 7, 1))
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(940)), "got %s", total)
}

func TestMemoryTaskRepositoryDeleteCascades(t *testing.T) {
	repo := NewMemoryTaskRepository()

	root := &models.Task{Title: "Relaunch", Status: models.TASK_STATUS_OPEN}
	require.NoError(t, repo.Create(root))
	child := &models.Task{Title: "Mockups", Status: models.TASK_STATUS_OPEN, ParentID: &root.ID}
	require.NoError(t, repo.Create(child))
	other := &models.Task{Title: "Invoices", Status: models.TASK_STATUS_OPEN}
	require.NoError(t, repo.Create(other))

	require.NoError(t, repo.Delete(root.ID))

	tasks, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, other.ID, tasks[0].ID)
}

func TestMemoryTaskRepositoryOrdering(t *testing.T) {
	repo := NewMemoryTaskRepository()
	require.NoError(t, repo.Create(&models.Task{Title: "Second", Status: models.TASK_STATUS_OPEN, Position: 2}))
	require.NoError(t, repo.Create(&models.Task{Title: "First", Status: models.TASK_STATUS_OPEN, Position: 1}))

	tasks, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Title)
}

func TestMemoryArticleRepositorySlugLookups(t *testing.T) {
	repo := NewMemoryArticleRepository()

	published := &models.Article{Title: "Backups", Slug: "backups", IsPublished: true}
	draft := &models.Article{Title: "Draft", Slug: "draft"}
	require.NoError(t, repo.Create(published))
	require.NoError(t, repo.Create(draft))

	got, err := repo.GetBySlug("backups")
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)

	// Drafts are not reachable by slug.
	_, err = repo.GetBySlug("draft")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	exists, err := repo.SlugExists("draft")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExistsExceptID("draft", draft.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	publishedOnly, err := repo.GetPublished(0, 10)
	require.NoError(t, err)
	require.Len(t, publishedOnly, 1)
	assert.Equal(t, "backups", publishedOnly[0].Slug)

	all, err := repo.GetAll(0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemorySettingRepository(t *testing.T) {
	repo := NewMemorySettingRepository()

	settings, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, settings.RenewalLookahead, "expected default lookahead")

	settings.CompanyName = "Acme Consulting"
	settings.RenewalLookahead = 14
	require.NoError(t, repo.Save(settings))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "Acme Consulting", got.CompanyName)
	assert.Equal(t, 14, got.RenewalLookahead)

	require.NoError(t, repo.SetValue("backup_bucket", "s3://acme"))
	v, err := repo.GetValue("backup_bucket")
	require.NoError(t, err)
	assert.Equal(t, "s3://acme", v)
}

func TestMemoryUserRepositoryProviderAccounts(t *testing.T) {
	repo := NewMemoryUserRepository()

	user := &models.User{Name: "Maria Diaz", Email: "maria@example.com", Password: "x", Role: models.ROLE_USER, Status: models.USER_STATUS_ACTIVE}
	require.NoError(t, repo.Create(user))

	_, err := repo.GetByProviderAccount("google", "g-123")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, repo.LinkProviderAccount(&models.ProviderAccount{
		UserID:         user.ID,
		Provider:       "google",
		ProviderUserID: "g-123",
	}))

	got, err := repo.GetByProviderAccount("google", "g-123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Linking the same provider identity again updates instead of duplicating.
	require.NoError(t, repo.LinkProviderAccount(&models.ProviderAccount{
		UserID:         user.ID,
		Provider:       "google",
		ProviderUserID: "g-123",
	}))
	got, err = repo.GetByEmail("maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}
