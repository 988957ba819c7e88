package usecase

import (
	"errors"
	"testing"

	"kamstim/internal/entity"
	"kamstim/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReplyUseCase(replyRepo *MockReplyRepository, postRepo *MockPostRepository) ReplyUseCase {
	return NewReplyUseCase(replyRepo, postRepo, nil, logger.New())
}

func TestCreateReply_EmptyContent(t *testing.T) {
	uc := newReplyUseCase(new(MockReplyRepository), new(MockPostRepository))

	_, err := uc.CreateReply("user-1", "post-1", "  \n ")

	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCreateReply_PostNotFound(t *testing.T) {
	replyRepo := new(MockReplyRepository)
	postRepo := new(MockPostRepository)
	uc := newReplyUseCase(replyRepo, postRepo)

	postRepo.On("Exists", "post-missing").Return(false, nil)

	_, err := uc.CreateReply("user-1", "post-missing", "Dobrý tip!")

	assert.True(t, errors.Is(err, ErrNotFound))
	replyRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateReply_Success(t *testing.T) {
	replyRepo := new(MockReplyRepository)
	postRepo := new(MockPostRepository)
	uc := newReplyUseCase(replyRepo, postRepo)

	postRepo.On("Exists", "post-1").Return(true, nil)
	replyRepo.On("Create", mock.MatchedBy(func(r *entity.Reply) bool {
		return r.AuthorID == "user-1" && r.PostID == "post-1" && r.Content == "Dobrý tip!"
	})).Return(nil)

	reply, err := uc.CreateReply("user-1", "post-1", "Dobrý tip!")

	assert.NoError(t, err)
	assert.Equal(t, "post-1", reply.PostID)
	replyRepo.AssertExpectations(t)
}
