package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/ManuelReschke/StudioSite/app/models"
)

type contactRequestRepository struct {
	db *gorm.DB
}

func NewContactRequestRepository(db *gorm.DB) ContactRequestRepository {
	return &contactRequestRepository{db: db}
}

func (r *contactRequestRepository) Create(req *models.ContactRequest) error {
	return r.db.Create(req).Error
}

func (r *contactRequestRepository) GetByID(id uint) (*models.ContactRequest, error) {
	var req models.ContactRequest
	err := r.db.First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List returns leads newest first. An empty status lists all of them.
func (r *contactRequestRepository) List(status string, offset, limit int) ([]models.ContactRequest, error) {
	var reqs []models.ContactRequest
	query := r.db.Order("created_at DESC").Offset(offset).Limit(limit)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&reqs).Error
	return reqs, err
}

func (r *contactRequestRepository) Count(status string) (int64, error) {
	var count int64
	query := r.db.Model(&models.ContactRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *contactRequestRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactRequest{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

func (r *contactRequestRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.ContactRequest{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft deletes a lead by its ID
func (r *contactRequestRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactRequest{}, id).Error
}
