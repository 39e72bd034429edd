package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
)

// The memory driver keeps every entity in process-local maps. It backs the
// STORAGE_DRIVER=memory mode and the test suites; behavior mirrors the GORM
// implementations including gorm.ErrRecordNotFound on misses.

// NewMemoryRepositories creates in-memory instances of all repositories
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Client:  NewMemoryClientRepository(),
		Plan:    NewMemoryPlanRepository(),
		Invoice: NewMemoryInvoiceRepository(),
		Expense: NewMemoryExpenseRepository(),
		Task:    NewMemoryTaskRepository(),
		Article: NewMemoryArticleRepository(),
		Setting: NewMemorySettingRepository(),
		User:    NewMemoryUserRepository(),
	}
}

// memoryClientRepository is an in-memory implementation of ClientRepository
type memoryClientRepository struct {
	mu      sync.RWMutex
	nextID  uint
	nextSub uint
	clients map[uint]models.Client
	subs    map[uint]models.ClientPlan
}

// NewMemoryClientRepository creates a new in-memory client repository
func NewMemoryClientRepository() ClientRepository {
	return &memoryClientRepository{
		nextID:  1,
		nextSub: 1,
		clients: make(map[uint]models.Client),
		subs:    make(map[uint]models.ClientPlan),
	}
}

func (r *memoryClientRepository) Create(client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	client.ID = r.nextID
	r.nextID++
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt
	r.clients[client.ID] = *client
	return nil
}

func (r *memoryClientRepository) attachPlans(c models.Client) models.Client {
	c.Plans = nil
	ids := make([]uint, 0, len(r.subs))
	for id := range r.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if sub := r.subs[id]; sub.ClientID == c.ID {
			c.Plans = append(c.Plans, sub)
		}
	}
	return c
}

func (r *memoryClientRepository) GetByID(id uint) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	client = r.attachPlans(client)
	return &client, nil
}

func (r *memoryClientRepository) Update(client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	client.UpdatedAt = time.Now()
	stored := *client
	stored.Plans = nil
	r.clients[client.ID] = stored
	return nil
}

func (r *memoryClientRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, id)
	return nil
}

func (r *memoryClientRepository) sortedLocked() []models.Client {
	clients := make([]models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, r.attachPlans(c))
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients
}

func (r *memoryClientRepository) List(offset, limit int) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := r.sortedLocked()
	if offset >= len(clients) {
		return []models.Client{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(clients) {
		end = len(clients)
	}
	return clients[offset:end], nil
}

func (r *memoryClientRepository) ListAll() ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(), nil
}

func (r *memoryClientRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.clients)), nil
}

func (r *memoryClientRepository) Search(query string) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var out []models.Client
	for _, c := range r.sortedLocked() {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryClientRepository) AddPlan(sub *models.ClientPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[sub.ClientID]; !ok {
		return gorm.ErrRecordNotFound
	}
	sub.ID = r.nextSub
	r.nextSub++
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt
	r.subs[sub.ID] = *sub
	return nil
}

func (r *memoryClientRepository) RemovePlan(clientID, subscriptionID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sub, ok := r.subs[subscriptionID]; ok && sub.ClientID == clientID {
		delete(r.subs, subscriptionID)
	}
	return nil
}

// memoryPlanRepository is an in-memory implementation of PlanRepository
type memoryPlanRepository struct {
	mu     sync.RWMutex
	nextID uint
	plans  map[uint]models.Plan
}

// NewMemoryPlanRepository creates a new in-memory plan repository
func NewMemoryPlanRepository() PlanRepository {
	return &memoryPlanRepository{nextID: 1, plans: make(map[uint]models.Plan)}
}

func (r *memoryPlanRepository) Create(plan *models.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan.ID = r.nextID
	r.nextID++
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt
	r.plans[plan.ID] = *plan
	return nil
}

func (r *memoryPlanRepository) GetByID(id uint) (*models.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &plan, nil
}

func (r *memoryPlanRepository) Update(plan *models.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[plan.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	plan.UpdatedAt = time.Now()
	r.plans[plan.ID] = *plan
	return nil
}

func (r *memoryPlanRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, id)
	return nil
}

func (r *memoryPlanRepository) sortedLocked() []models.Plan {
	plans := make([]models.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })
	return plans
}

func (r *memoryPlanRepository) List(offset, limit int) ([]models.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plans := r.sortedLocked()
	if offset >= len(plans) {
		return []models.Plan{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(plans) {
		end = len(plans)
	}
	return plans[offset:end], nil
}

func (r *memoryPlanRepository) ListAll() ([]models.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(), nil
}

func (r *memoryPlanRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.plans)), nil
}

// memoryInvoiceRepository is an in-memory implementation of InvoiceRepository
type memoryInvoiceRepository struct {
	mu       sync.RWMutex
	nextID   uint
	invoices map[uint]models.Invoice
}

// NewMemoryInvoiceRepository creates a new in-memory invoice repository
func NewMemoryInvoiceRepository() InvoiceRepository {
	return &memoryInvoiceRepository{nextID: 1, invoices: make(map[uint]models.Invoice)}
}

func (r *memoryInvoiceRepository) Create(invoice *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice.ID = r.nextID
	r.nextID++
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = invoice.CreatedAt
	r.invoices[invoice.ID] = *invoice
	return nil
}

func (r *memoryInvoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &invoice, nil
}

func (r *memoryInvoiceRepository) GetByNumber(number string) (*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invoices {
		if inv.Number == number {
			found := inv
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryInvoiceRepository) Update(invoice *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[invoice.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	invoice.UpdatedAt = time.Now()
	r.invoices[invoice.ID] = *invoice
	return nil
}

func (r *memoryInvoiceRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invoices, id)
	return nil
}

func (r *memoryInvoiceRepository) sortedLocked() []models.Invoice {
	invoices := make([]models.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		invoices = append(invoices, inv)
	}
	sort.Slice(invoices, func(i, j int) bool { return invoices[i].DueDate.After(invoices[j].DueDate) })
	return invoices
}

func (r *memoryInvoiceRepository) List(offset, limit int) ([]models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	invoices := r.sortedLocked()
	if offset >= len(invoices) {
		return []models.Invoice{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(invoices) {
		end = len(invoices)
	}
	return invoices[offset:end], nil
}

func (r *memoryInvoiceRepository) ListAll() ([]models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(), nil
}

func (r *memoryInvoiceRepository) ListByClient(clientID uint) ([]models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Invoice
	for _, inv := range r.sortedLocked() {
		if inv.ClientID == clientID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *memoryInvoiceRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.invoices)), nil
}

func (r *memoryInvoiceRepository) MarkOverdue(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var changed int64
	for id, inv := range r.invoices {
		if inv.Status == models.INVOICE_STATUS_PENDING && inv.DueDate.Before(now) {
			inv.Status = models.INVOICE_STATUS_OVERDUE
			inv.UpdatedAt = time.Now()
			r.invoices[id] = inv
			changed++
		}
	}
	return changed, nil
}

func (r *memoryInvoiceRepository) OutstandingTotal() (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, inv := range r.invoices {
		if inv.IsOpen() {
			total = total.Add(inv.Amount)
		}
	}
	return total, nil
}

// memoryExpenseRepository is an in-memory implementation of ExpenseRepository
type memoryExpenseRepository struct {
	mu       sync.RWMutex
	nextID   uint
	expenses map[uint]models.Expense
}

// NewMemoryExpenseRepository creates a new in-memory expense repository
func NewMemoryExpenseRepository() ExpenseRepository {
	return &memoryExpenseRepository{nextID: 1, expenses: make(map[uint]models.Expense)}
}

func (r *memoryExpenseRepository) Create(expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	expense.ID = r.nextID
	r.nextID++
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = expense.CreatedAt
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *memoryExpenseRepository) GetByID(id uint) (*models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expense, ok := r.expenses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &expense, nil
}

func (r *memoryExpenseRepository) Update(expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[expense.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	expense.UpdatedAt = time.Now()
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *memoryExpenseRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.expenses, id)
	return nil
}

func (r *memoryExpenseRepository) List(offset, limit int) ([]models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expenses := make([]models.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		expenses = append(expenses, e)
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].IncurredAt.After(expenses[j].IncurredAt) })
	if offset >= len(expenses) {
		return []models.Expense{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(expenses) {
		end = len(expenses)
	}
	return expenses[offset:end], nil
}

func (r *memoryExpenseRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.expenses)), nil
}

func (r *memoryExpenseRepository) TotalBetween(start, end time.Time) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, e := range r.expenses {
		if !e.IncurredAt.Before(start) && e.IncurredAt.Before(end) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// memoryTaskRepository is an in-memory implementation of TaskRepository
type memoryTaskRepository struct {
	mu     sync.RWMutex
	nextID uint
	tasks  map[uint]models.Task
}

// NewMemoryTaskRepository creates a new in-memory task repository
func NewMemoryTaskRepository() TaskRepository {
	return &memoryTaskRepository{nextID: 1, tasks: make(map[uint]models.Task)}
}

func (r *memoryTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.ID = r.nextID
	r.nextID++
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	r.tasks[task.ID] = *task
	return nil
}

func (r *memoryTaskRepository) GetByID(id uint) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

func (r *memoryTaskRepository) Update(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = *task
	return nil
}

func (r *memoryTaskRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for childID, t := range r.tasks {
		if t.ParentID != nil && *t.ParentID == id {
			delete(r.tasks, childID)
		}
	}
	delete(r.tasks, id)
	return nil
}

func (r *memoryTaskRepository) sortedLocked() []models.Task {
	tasks := make([]models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Position != tasks[j].Position {
			return tasks[i].Position < tasks[j].Position
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks
}

func (r *memoryTaskRepository) ListAll() ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(), nil
}

func (r *memoryTaskRepository) ListByClient(clientID uint) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Task
	for _, t := range r.sortedLocked() {
		if t.ClientID != nil && *t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memoryTaskRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.tasks)), nil
}

// memoryArticleRepository is an in-memory implementation of ArticleRepository
type memoryArticleRepository struct {
	mu       sync.RWMutex
	nextID   uint
	articles map[uint]models.Article
}

// NewMemoryArticleRepository creates a new in-memory article repository
func NewMemoryArticleRepository() ArticleRepository {
	return &memoryArticleRepository{nextID: 1, articles: make(map[uint]models.Article)}
}

func (r *memoryArticleRepository) Create(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	article.ID = r.nextID
	r.nextID++
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	r.articles[article.ID] = *article
	return nil
}

func (r *memoryArticleRepository) GetByID(id uint) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	article, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

func (r *memoryArticleRepository) GetBySlug(slug string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.articles {
		if a.Slug == slug && a.IsPublished {
			found := a
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryArticleRepository) sortedLocked() []models.Article {
	articles := make([]models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].CreatedAt.After(articles[j].CreatedAt) })
	return articles
}

func pageArticles(articles []models.Article, offset, limit int) []models.Article {
	if offset >= len(articles) {
		return []models.Article{}
	}
	end := offset + limit
	if limit <= 0 || end > len(articles) {
		end = len(articles)
	}
	return articles[offset:end]
}

func (r *memoryArticleRepository) GetPublished(offset, limit int) ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var published []models.Article
	for _, a := range r.sortedLocked() {
		if a.IsPublished {
			published = append(published, a)
		}
	}
	return pageArticles(published, offset, limit), nil
}

func (r *memoryArticleRepository) GetAll(offset, limit int) ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return pageArticles(r.sortedLocked(), offset, limit), nil
}

func (r *memoryArticleRepository) Update(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	article.UpdatedAt = time.Now()
	r.articles[article.ID] = *article
	return nil
}

func (r *memoryArticleRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.articles, id)
	return nil
}

func (r *memoryArticleRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.articles)), nil
}

func (r *memoryArticleRepository) SlugExists(slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryArticleRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.articles {
		if a.Slug == slug && a.ID != id {
			return true, nil
		}
	}
	return false, nil
}

// memorySettingRepository is an in-memory implementation of SettingRepository
type memorySettingRepository struct {
	mu       sync.RWMutex
	settings *models.CompanySettings
	values   map[string]string
}

// NewMemorySettingRepository creates a new in-memory setting repository
func NewMemorySettingRepository() SettingRepository {
	return &memorySettingRepository{values: make(map[string]string)}
}

func (r *memorySettingRepository) Get() (*models.CompanySettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return models.GetCompanySettings(), nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *memorySettingRepository) Save(settings *models.CompanySettings) error {
	if err := validator.New().Struct(settings); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *settings
	r.settings = &cp
	return nil
}

func (r *memorySettingRepository) GetValue(key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[key], nil
}

func (r *memorySettingRepository) SetValue(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// memoryUserRepository is an in-memory implementation of UserRepository
type memoryUserRepository struct {
	mu       sync.RWMutex
	nextID   uint
	nextAcct uint
	users    map[uint]models.User
	accounts map[uint]models.ProviderAccount
}

// NewMemoryUserRepository creates a new in-memory user repository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		nextID:   1,
		nextAcct: 1,
		users:    make(map[uint]models.User),
		accounts: make(map[uint]models.ProviderAccount),
	}
}

func (r *memoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) GetByProviderAccount(provider, providerUserID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, acct := range r.accounts {
		if acct.Provider == provider && acct.ProviderUserID == providerUserID {
			user, ok := r.users[acct.UserID]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			found := user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) LinkProviderAccount(account *models.ProviderAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, acct := range r.accounts {
		if acct.Provider == account.Provider && acct.ProviderUserID == account.ProviderUserID {
			account.ID = id
			account.UpdatedAt = time.Now()
			r.accounts[id] = *account
			return nil
		}
	}
	account.ID = r.nextAcct
	r.nextAcct++
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	r.accounts[account.ID] = *account
	return nil
}

func (r *memoryUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
