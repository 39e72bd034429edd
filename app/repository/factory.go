package repository

import (
	"sync"

	"gorm.io/gorm"

	"github.com/madiaz/bizledger/internal/pkg/env"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// Factory manages repository instances and ensures they are singletons.
// The storage driver is resolved once at startup; business code never
// branches on it again.
type Factory struct {
	db     *gorm.DB
	driver string
	repos  *Repositories
	once   sync.Once
}

// NewFactory creates a new repository factory for the given driver
func NewFactory(db *gorm.DB, driver string) *Factory {
	return &Factory{
		db:     db,
		driver: driver,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		if f.driver == DriverMemory {
			f.repos = NewMemoryRepositories()
			return
		}
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetClientRepository returns the client repository instance
func (f *Factory) GetClientRepository() ClientRepository {
	return f.GetRepositories().Client
}

// GetPlanRepository returns the plan repository instance
func (f *Factory) GetPlanRepository() PlanRepository {
	return f.GetRepositories().Plan
}

// GetInvoiceRepository returns the invoice repository instance
func (f *Factory) GetInvoiceRepository() InvoiceRepository {
	return f.GetRepositories().Invoice
}

// GetExpenseRepository returns the expense repository instance
func (f *Factory) GetExpenseRepository() ExpenseRepository {
	return f.GetRepositories().Expense
}

// GetTaskRepository returns the task repository instance
func (f *Factory) GetTaskRepository() TaskRepository {
	return f.GetRepositories().Task
}

// GetArticleRepository returns the article repository instance
func (f *Factory) GetArticleRepository() ArticleRepository {
	return f.GetRepositories().Article
}

// GetSettingRepository returns the setting repository instance
func (f *Factory) GetSettingRepository() SettingRepository {
	return f.GetRepositories().Setting
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// DriverFromEnv resolves the configured storage driver name
func DriverFromEnv() string {
	if env.GetEnv("STORAGE_DRIVER", DriverMySQL) == DriverMemory {
		return DriverMemory
	}
	return DriverMySQL
}

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB, driver string) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db, driver)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}

// SetGlobalRepositoriesForTest swaps the global repositories (tests only)
func SetGlobalRepositoriesForTest(repos *Repositories) {
	f := NewFactory(nil, DriverMemory)
	f.once.Do(func() { f.repos = repos })
	globalFactory = f
}
