package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// NewFactoryWith wraps already built repositories, e.g. in-memory ones.
func NewFactoryWith(repos *Repositories) *Factory {
	f := &Factory{repos: repos}
	f.once.Do(func() {})
	return f
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

func (f *Factory) GetContactRequestRepository() ContactRequestRepository {
	return f.GetRepositories().ContactRequest
}

func (f *Factory) GetQuoteRepository() QuoteRepository {
	return f.GetRepositories().Quote
}

// GetStatisticsCounter returns the counter behind the admin dashboard figures
func (f *Factory) GetStatisticsCounter() *StatisticsCounter {
	repos := f.GetRepositories()
	return &StatisticsCounter{Leads: repos.ContactRequest, Quotes: repos.Quote}
}

// Global factory instance
var globalFactory *Factory
var factoryMu sync.Mutex

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	SetGlobalFactory(NewFactory(db))
}

// SetGlobalFactory installs f as the global factory.
func SetGlobalFactory(f *Factory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	globalFactory = f
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
