package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
	"github.com/ManuelReschke/StudioSite/internal/pkg/pricing"
)

// Quote is a saved calculator result, addressable by its UUID.
type Quote struct {
	ID           uint           `gorm:"primaryKey" json:"-"`
	UUID         string         `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	BusinessType string         `gorm:"type:varchar(50);not null" json:"business_type"`
	State        datatypes.JSON `json:"state"`
	Breakdown    datatypes.JSON `json:"breakdown"`
	Currency     string         `gorm:"type:varchar(3);not null" json:"currency"`
	BasePrice    int64          `gorm:"not null" json:"base_price"`
	Total        int64          `gorm:"not null" json:"total"`
	Email        string         `gorm:"type:varchar(255);index" json:"email,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.UUID == "" {
		q.UUID = uuid.New().String()
	}
	return nil
}

// NewQuote snapshots a calculator state together with its price breakdown.
func NewQuote(currency string, state pricing.State, breakdown pricing.Quote) (*Quote, error) {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode quote state: %w", err)
	}
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return nil, fmt.Errorf("encode quote breakdown: %w", err)
	}
	return &Quote{
		UUID:         uuid.New().String(),
		BusinessType: state.BusinessType,
		State:        datatypes.JSON(stateJSON),
		Breakdown:    datatypes.JSON(breakdownJSON),
		Currency:     currency,
		BasePrice:    int64(breakdown.BasePrice),
		Total:        int64(breakdown.Total),
	}, nil
}

// Selection decodes the stored calculator state.
func (q *Quote) Selection() (pricing.State, error) {
	var s pricing.State
	if err := json.Unmarshal(q.State, &s); err != nil {
		return pricing.State{}, fmt.Errorf("decode quote %s state: %w", q.UUID, err)
	}
	return s, nil
}

// Result decodes the stored breakdown.
func (q *Quote) Result() (pricing.Quote, error) {
	var r pricing.Quote
	if err := json.Unmarshal(q.Breakdown, &r); err != nil {
		return pricing.Quote{}, fmt.Errorf("decode quote %s breakdown: %w", q.UUID, err)
	}
	return r, nil
}

func (q *Quote) FormattedTotal() string {
	return catalog.FormatMoney(q.Currency, catalog.Money(q.Total))
}
