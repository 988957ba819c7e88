package persistent

import (
	"kamstim/internal/entity"
	"kamstim/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReactionRepository interface {
	GetByUserAndPost(userID, postID string) (*entity.Reaction, error)
	Create(reaction *entity.Reaction) error
	UpdateType(id string, reactionType entity.ReactionType) (*entity.Reaction, error)
	Delete(id string) error
	CountByPost(postID string) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) GetByUserAndPost(userID, postID string) (*entity.Reaction, error) {
	var reactionModel model.ReactionModel
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&reactionModel).Error
	if err != nil {
		return nil, err
	}
	return ToReactionEntity(&reactionModel), nil
}

// Create inserts the row. The composite unique index on (user_id, post_id)
// makes the second of two concurrent inserts fail with
// gorm.ErrDuplicatedKey; callers resolve that race by retrying as an update.
func (r *reactionRepository) Create(reaction *entity.Reaction) error {
	reactionModel := &model.ReactionModel{
		ID:     reaction.ID,
		Type:   string(reaction.Type),
		UserID: reaction.UserID,
		PostID: reaction.PostID,
	}
	if reactionModel.ID == "" {
		reactionModel.ID = uuid.New().String()
	}
	if err := r.db.Create(reactionModel).Error; err != nil {
		return err
	}
	*reaction = *ToReactionEntity(reactionModel)
	return nil
}

func (r *reactionRepository) UpdateType(id string, reactionType entity.ReactionType) (*entity.Reaction, error) {
	var reactionModel model.ReactionModel
	if err := r.db.Where("id = ?", id).First(&reactionModel).Error; err != nil {
		return nil, err
	}

	reactionModel.Type = string(reactionType)
	if err := r.db.Save(&reactionModel).Error; err != nil {
		return nil, err
	}
	return ToReactionEntity(&reactionModel), nil
}

func (r *reactionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.ReactionModel{}).Error
}

func (r *reactionRepository) CountByPost(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ReactionModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
