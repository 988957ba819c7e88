package usecase

import (
	"errors"
	"testing"

	"kamstim/internal/entity"
	"kamstim/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newPostUseCase(postRepo *MockPostRepository, userRepo *MockUserRepository) PostUseCase {
	return NewPostUseCase(postRepo, userRepo, logger.New())
}

func TestListPosts_ClampsPageAndLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantOffset int
	}{
		{"negative page falls back to first", -3, 10, 10, 0},
		{"zero page falls back to first", 0, 10, 10, 0},
		{"zero limit falls back to default", 1, 0, DefaultLimit, 0},
		{"oversized limit is capped", 1, 5000, MaxLimit, 0},
		{"second page offsets by limit", 2, 20, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			uc := newPostUseCase(postRepo, new(MockUserRepository))

			postRepo.On("ListPublished", tt.wantLimit, tt.wantOffset).Return([]*entity.Post{}, nil)
			postRepo.On("CountPublished").Return(int64(0), nil)

			_, err := uc.ListPosts(tt.page, tt.limit)

			assert.NoError(t, err)
			postRepo.AssertExpectations(t)
		})
	}
}

func TestListPosts_PageCount(t *testing.T) {
	postRepo := new(MockPostRepository)
	uc := newPostUseCase(postRepo, new(MockUserRepository))

	posts := []*entity.Post{{ID: "p-1"}, {ID: "p-2"}}
	postRepo.On("ListPublished", 10, 0).Return(posts, nil)
	postRepo.On("CountPublished").Return(int64(21), nil)

	page, err := uc.ListPosts(1, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, int64(3), page.Pages, "21 posts at 10 per page is 3 pages")
	assert.Len(t, page.Posts, 2)
}

func TestCreatePost_EmptyTitle(t *testing.T) {
	uc := newPostUseCase(new(MockPostRepository), new(MockUserRepository))

	_, err := uc.CreatePost("user-1", "   ", "content")

	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCreatePost_UserGone(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-gone").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.CreatePost("user-gone", "Title", "Content")

	assert.True(t, errors.Is(err, ErrNotFound))
	postRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePost_Success(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	uc := newPostUseCase(postRepo, userRepo)

	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1"}, nil)
	postRepo.On("Create", mock.MatchedBy(func(p *entity.Post) bool {
		return p.AuthorID == "user-1" && p.Published
	})).Return(nil)

	post, err := uc.CreatePost("user-1", "Kam s olejem", "Použitý olej patří do šedých popelnic.")

	assert.NoError(t, err)
	assert.True(t, post.Published)
	postRepo.AssertExpectations(t)
}
