package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/ManuelReschke/StudioSite/internal/pkg/contact"
	"github.com/ManuelReschke/StudioSite/internal/pkg/utils"
)

const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusClosed    = "closed"
)

// ContactStatuses lists the statuses in workflow order.
var ContactStatuses = []string{ContactStatusNew, ContactStatusContacted, ContactStatusClosed}

func ValidContactStatus(s string) bool {
	for _, v := range ContactStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ContactRequest is a lead submitted through the contact form or API.
type ContactRequest struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);index;not null" json:"email"`
	Service   string         `gorm:"type:varchar(50);not null" json:"service"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Phone     string         `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Company   string         `gorm:"type:varchar(100)" json:"company,omitempty"`
	Budget    string         `gorm:"type:varchar(50)" json:"budget,omitempty"`
	Timeline  string         `gorm:"type:varchar(50)" json:"timeline,omitempty"`
	QuoteUUID string         `gorm:"type:char(36);index" json:"quote_uuid,omitempty"`
	Status    string         `gorm:"type:varchar(20);default:'new';index" json:"status"`
	IPv4      string         `gorm:"type:varchar(15);default:null" json:"-"`
	IPv6      string         `gorm:"type:varchar(45);default:null" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// NewContactRequest builds a lead from an already validated form.
func NewContactRequest(f contact.Form, ipv4, ipv6 string) *ContactRequest {
	f = f.Trimmed()
	return &ContactRequest{
		Name:     f.Name,
		Email:    f.Email,
		Service:  f.Service,
		Message:  f.Message,
		Phone:    f.Phone,
		Company:  f.Company,
		Budget:   f.Budget,
		Timeline: f.Timeline,
		Status:   ContactStatusNew,
		IPv4:     ipv4,
		IPv6:     ipv6,
	}
}

func (r *ContactRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = ContactStatusNew
	}
	return nil
}

// AvatarURL is the Gravatar of the lead's email for the inbox.
func (r ContactRequest) AvatarURL() string {
	return utils.GravatarURL(r.Email, 40)
}
