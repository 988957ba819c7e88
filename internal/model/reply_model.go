package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReplyModel struct {
	ID        string     `gorm:"type:uuid;primary_key" json:"id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	AuthorID  string     `gorm:"type:uuid;not null;index" json:"author_id"`
	PostID    string     `gorm:"type:uuid;not null;index" json:"post_id"`
	Author    *UserModel `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (ReplyModel) TableName() string {
	return "replies"
}

func (r *ReplyModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
