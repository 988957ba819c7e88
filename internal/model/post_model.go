package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID        string          `gorm:"type:uuid;primary_key" json:"id"`
	Title     string          `gorm:"not null" json:"title"`
	Content   string          `gorm:"type:text;not null" json:"content"`
	Published bool            `gorm:"default:true;index" json:"published"`
	AuthorID  string          `gorm:"type:uuid;not null;index" json:"author_id"`
	Author    *UserModel      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Reactions []ReactionModel `gorm:"foreignKey:PostID" json:"reactions,omitempty"`
	Replies   []ReplyModel    `gorm:"foreignKey:PostID" json:"replies,omitempty"`
	CreatedAt time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
