package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountModel struct {
	ID                string    `gorm:"type:uuid;primary_key" json:"id"`
	Provider          string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_accounts_provider_account" json:"provider"`
	ProviderAccountID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_provider_account" json:"provider_account_id"`
	UserID            string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

func (a *AccountModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
