package usecase

import (
	"kamstim/internal/entity"
	"kamstim/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockReactionRepository is a mock implementation of persistent.ReactionRepository
type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) GetByUserAndPost(userID, postID string) (*entity.Reaction, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reaction), args.Error(1)
}

func (m *MockReactionRepository) Create(reaction *entity.Reaction) error {
	args := m.Called(reaction)
	return args.Error(0)
}

func (m *MockReactionRepository) UpdateType(id string, reactionType entity.ReactionType) (*entity.Reaction, error) {
	args := m.Called(id, reactionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reaction), args.Error(1)
}

func (m *MockReactionRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockReactionRepository) CountByPost(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ReactionRepository = (*MockReactionRepository)(nil)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) GetAuthorID(id string) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

func (m *MockPostRepository) ListPublished(limit, offset int) ([]*entity.Post, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) CountPublished() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockReplyRepository is a mock implementation of persistent.ReplyRepository
type MockReplyRepository struct {
	mock.Mock
}

func (m *MockReplyRepository) Create(reply *entity.Reply) error {
	args := m.Called(reply)
	return args.Error(0)
}

func (m *MockReplyRepository) GetByPost(postID string) ([]*entity.Reply, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Reply), args.Error(1)
}

var _ persistent.ReplyRepository = (*MockReplyRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAccount(provider, providerAccountID string) (*entity.Account, error) {
	args := m.Called(provider, providerAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockUserRepository) LinkAccount(account *entity.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)
