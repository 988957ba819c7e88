package usecase

import (
	"errors"
	"fmt"
	"strings"

	"kamstim/internal/entity"
	"kamstim/internal/repo/persistent"
	"kamstim/pkg/logger"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PostUseCase interface {
	ListPosts(page, limit int) (*entity.PostPage, error)
	CreatePost(userID, title, content string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListPosts returns one window over the published posts, newest first.
// Out-of-range paging parameters are clamped rather than rejected.
func (uc *postUseCase) ListPosts(page, limit int) (*entity.PostPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := (page - 1) * limit

	posts, err := uc.postRepo.ListPublished(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	total, err := uc.postRepo.CountPublished()
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	pages := (total + int64(limit) - 1) / int64(limit)

	return &entity.PostPage{
		Posts: posts,
		Total: total,
		Pages: pages,
	}, nil
}

// CreatePost stores an immediately-published post for the given author.
func (uc *postUseCase) CreatePost(userID, title, content string) (*entity.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: missing post title or content", ErrValidation)
	}

	// The token may outlive its user row.
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	post := &entity.Post{
		Title:     title,
		Content:   content,
		Published: true,
		AuthorID:  user.ID,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}
