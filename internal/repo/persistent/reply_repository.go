package persistent

import (
	"kamstim/internal/entity"
	"kamstim/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReplyRepository interface {
	Create(reply *entity.Reply) error
	GetByPost(postID string) ([]*entity.Reply, error)
}

type replyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(reply *entity.Reply) error {
	replyModel := &model.ReplyModel{
		ID:       reply.ID,
		Content:  reply.Content,
		AuthorID: reply.AuthorID,
		PostID:   reply.PostID,
	}
	if replyModel.ID == "" {
		replyModel.ID = uuid.New().String()
	}
	if err := r.db.Create(replyModel).Error; err != nil {
		return err
	}

	var created model.ReplyModel
	if err := r.db.Preload("Author").Where("id = ?", replyModel.ID).First(&created).Error; err != nil {
		return err
	}
	*reply = *ToReplyEntity(&created)
	return nil
}

func (r *replyRepository) GetByPost(postID string) ([]*entity.Reply, error) {
	var replyModels []model.ReplyModel
	err := r.db.Preload("Author").Where("post_id = ?", postID).Order("created_at ASC").Find(&replyModels).Error
	if err != nil {
		return nil, err
	}

	replies := make([]*entity.Reply, len(replyModels))
	for i := range replyModels {
		replies[i] = ToReplyEntity(&replyModels[i])
	}
	return replies, nil
}
