package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/ManuelReschke/StudioSite/app/models"
)

// ContactRequestRepository defines the database operations on leads
type ContactRequestRepository interface {
	Create(req *models.ContactRequest) error
	GetByID(id uint) (*models.ContactRequest, error)
	List(status string, offset, limit int) ([]models.ContactRequest, error)
	Count(status string) (int64, error)
	CountSince(since time.Time) (int64, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

// QuoteRepository defines the database operations on saved quotes
type QuoteRepository interface {
	Create(quote *models.Quote) error
	GetByUUID(uuid string) (*models.Quote, error)
	GetRecent(limit int) ([]models.Quote, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	ContactRequest ContactRequestRepository
	Quote          QuoteRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		ContactRequest: NewContactRequestRepository(db),
		Quote:          NewCachedQuoteRepository(NewQuoteRepository(db), RedisQuoteCache{}),
	}
}
