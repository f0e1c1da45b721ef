package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recurrence values accepted on a client record. The reminder sweep runs on a
// monthly cadence regardless; see services.ReminderService.
const (
	RecurrenceMonthly    = "monthly"
	RecurrenceQuarterly  = "3_months"
	RecurrenceSemiannual = "6_months"
	RecurrenceAnnual     = "1_year"
)

type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Name     string `gorm:"not null"`
	WhatsApp string `gorm:"not null;uniqueIndex"` // digits only
	Service  string `gorm:"not null"`

	Value      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BillingDay int             `gorm:"not null"` // calendar day of month, 1-31
	Recurrence string          `gorm:"type:varchar(20);default:'monthly'"`

	// LastBillingDate is only advanced after a confirmed dispatch; it is the
	// dedup marker for "already reminded this month".
	LastBillingDate *time.Time
	IsActive        bool `gorm:"default:true"`

	gorm.Model
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

func ValidRecurrence(r string) bool {
	switch r {
	case RecurrenceMonthly, RecurrenceQuarterly, RecurrenceSemiannual, RecurrenceAnnual:
		return true
	}
	return false
}
