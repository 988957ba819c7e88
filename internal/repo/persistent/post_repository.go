package persistent

import (
	"kamstim/internal/entity"
	"kamstim/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	Exists(id string) (bool, error)
	GetAuthorID(id string) (string, error)
	ListPublished(limit, offset int) ([]*entity.Post, error)
	CountPublished() (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	// Reload with the author projection so the response is hydrated.
	var created model.PostModel
	if err := r.db.Preload("Author").Where("id = ?", postModel.ID).First(&created).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(&created)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.
		Preload("Author").
		Preload("Reactions.User").
		Preload("Replies.Author").
		Where("id = ?", id).
		First(&postModel).Error
	if err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *postRepository) GetAuthorID(id string) (string, error) {
	var authorID string
	err := r.db.Model(&model.PostModel{}).Select("author_id").Where("id = ?", id).Scan(&authorID).Error
	return authorID, err
}

// ListPublished returns one page of published posts, newest first with id as
// a stable tiebreak, hydrated with author, reactions and replies.
func (r *postRepository) ListPublished(limit, offset int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.
		Preload("Author").
		Preload("Reactions.User").
		Preload("Replies.Author").
		Where("published = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("published = ?", true).Count(&count).Error
	return count, err
}
