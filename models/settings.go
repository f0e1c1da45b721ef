package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings is the single configuration row: the automatic sending options and
// the PIX merchant identity used to build every charge. Read-only to the
// reminder core; mutated only through the settings endpoint.
type Settings struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	AutomaticSendingEnabled bool   `gorm:"default:false"`
	DaysBeforeDue           int    `gorm:"default:1"`
	SendTime                string `gorm:"type:varchar(5);default:'09:00'"` // HH:MM, 24h
	MessageTemplate         string `gorm:"type:text"`

	PixName    string
	PixCity    string
	PixKey     string
	PixKeyType string `gorm:"type:varchar(20)"` // phone, email, cpf, cnpj, random
	PixTxid    string

	gorm.Model
}

func (s *Settings) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
