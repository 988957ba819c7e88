package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReactionModel carries the composite unique index on (user_id, post_id).
// The constraint, not an application-level check, guarantees at most one
// reaction per user and post under concurrent requests.
type ReactionModel struct {
	ID        string     `gorm:"type:uuid;primary_key" json:"id"`
	Type      string     `gorm:"type:varchar(10);not null" json:"type"`
	UserID    string     `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_user_id_post_id" json:"user_id"`
	PostID    string     `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_user_id_post_id" json:"post_id"`
	User      *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (ReactionModel) TableName() string {
	return "reactions"
}

func (r *ReactionModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
