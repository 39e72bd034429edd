package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
)

// ClientRepository defines the interface for client-related database operations
type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(id uint) (*models.Client, error)
	Update(client *models.Client) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Client, error)
	ListAll() ([]models.Client, error)
	Count() (int64, error)
	Search(query string) ([]models.Client, error)
	AddPlan(sub *models.ClientPlan) error
	RemovePlan(clientID, subscriptionID uint) error
}

// PlanRepository defines the interface for service-plan operations
type PlanRepository interface {
	Create(plan *models.Plan) error
	GetByID(id uint) (*models.Plan, error)
	Update(plan *models.Plan) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Plan, error)
	ListAll() ([]models.Plan, error)
	Count() (int64, error)
}

// InvoiceRepository defines the interface for invoice operations
type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	GetByID(id uint) (*models.Invoice, error)
	GetByNumber(number string) (*models.Invoice, error)
	Update(invoice *models.Invoice) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Invoice, error)
	ListAll() ([]models.Invoice, error)
	ListByClient(clientID uint) ([]models.Invoice, error)
	Count() (int64, error)
	// MarkOverdue flips pending invoices whose due date has passed and
	// returns how many rows changed.
	MarkOverdue(now time.Time) (int64, error)
	OutstandingTotal() (decimal.Decimal, error)
}

// ExpenseRepository defines the interface for expense operations
type ExpenseRepository interface {
	Create(expense *models.Expense) error
	GetByID(id uint) (*models.Expense, error)
	Update(expense *models.Expense) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Expense, error)
	Count() (int64, error)
	TotalBetween(start, end time.Time) (decimal.Decimal, error)
}

// TaskRepository defines the interface for task operations
type TaskRepository interface {
	Create(task *models.Task) error
	GetByID(id uint) (*models.Task, error)
	Update(task *models.Task) error
	Delete(id uint) error
	ListAll() ([]models.Task, error)
	ListByClient(clientID uint) ([]models.Task, error)
	Count() (int64, error)
}

// ArticleRepository defines the interface for knowledge base operations
type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	GetPublished(offset, limit int) ([]models.Article, error)
	GetAll(offset, limit int) ([]models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// SettingRepository defines the interface for application settings
type SettingRepository interface {
	Get() (*models.CompanySettings, error)
	Save(settings *models.CompanySettings) error
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByProviderAccount(provider, providerUserID string) (*models.User, error)
	LinkProviderAccount(account *models.ProviderAccount) error
	Update(user *models.User) error
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Client  ClientRepository
	Plan    PlanRepository
	Invoice InvoiceRepository
	Expense ExpenseRepository
	Task    TaskRepository
	Article ArticleRepository
	Setting SettingRepository
	User    UserRepository
}

// NewRepositories creates GORM-backed instances of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Client:  NewClientRepository(db),
		Plan:    NewPlanRepository(db),
		Invoice: NewInvoiceRepository(db),
		Expense: NewExpenseRepository(db),
		Task:    NewTaskRepository(db),
		Article: NewArticleRepository(db),
		Setting: NewSettingRepository(db),
		User:    NewUserRepository(db),
	}
}
