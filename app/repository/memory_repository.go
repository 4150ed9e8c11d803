package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ManuelReschke/StudioSite/app/models"
)

// NewMemoryRepositories returns repositories backed by process memory,
// used by tests and local runs without a database.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		ContactRequest: NewMemoryContactRequestRepository(),
		Quote:          NewMemoryQuoteRepository(),
	}
}

type memoryContactRequestRepository struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]models.ContactRequest
}

func NewMemoryContactRequestRepository() ContactRequestRepository {
	return &memoryContactRequestRepository{items: make(map[uint]models.ContactRequest)}
}

func (r *memoryContactRequestRepository) Create(req *models.ContactRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	req.ID = r.nextID
	if req.Status == "" {
		req.Status = models.ContactStatusNew
	}
	now := time.Now()
	req.CreatedAt, req.UpdatedAt = now, now
	r.items[req.ID] = *req
	return nil
}

func (r *memoryContactRequestRepository) GetByID(id uint) (*models.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}

func (r *memoryContactRequestRepository) filtered(status string) []models.ContactRequest {
	var out []models.ContactRequest
	for _, req := range r.items {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *memoryContactRequestRepository) List(status string, offset, limit int) ([]models.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.filtered(status)
	if offset >= len(all) {
		return []models.ContactRequest{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memoryContactRequestRepository) Count(status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filtered(status))), nil
}

func (r *memoryContactRequestRepository) CountSince(since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, req := range r.items {
		if !req.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *memoryContactRequestRepository) UpdateStatus(id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	r.items[id] = req
	return nil
}

func (r *memoryContactRequestRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type memoryQuoteRepository struct {
	mu    sync.Mutex
	items []models.Quote
}

func NewMemoryQuoteRepository() QuoteRepository {
	return &memoryQuoteRepository{}
}

func (r *memoryQuoteRepository) Create(quote *models.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if quote.UUID == "" {
		quote.UUID = uuid.New().String()
	}
	quote.ID = uint(len(r.items) + 1)
	quote.CreatedAt = time.Now()
	quote.UpdatedAt = quote.CreatedAt
	r.items = append(r.items, *quote)
	return nil
}

func (r *memoryQuoteRepository) GetByUUID(id string) (*models.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.items {
		if q.UUID == id {
			return &q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryQuoteRepository) GetRecent(limit int) ([]models.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Quote, 0, limit)
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

func (r *memoryQuoteRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}
