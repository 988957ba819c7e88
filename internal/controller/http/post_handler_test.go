package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kamstim/internal/entity"
	"kamstim/internal/usecase"
	"kamstim/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) ListPosts(page, limit int) (*entity.PostPage, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostPage), args.Error(1)
}

func (m *MockPostUseCase) CreatePost(userID, title, content string) (*entity.Post, error) {
	args := m.Called(userID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func TestListPosts_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	page := &entity.PostPage{
		Posts: []*entity.Post{
			{ID: "p-1", Title: "Kam s bateriemi", Author: &entity.User{ID: "u-1", Name: "Alena"}},
		},
		Total: 1,
		Pages: 1,
	}
	mockUseCase.On("ListPosts", 1, 10).Return(page, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response entity.PostPage
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(1), response.Total)
	assert.Len(t, response.Posts, 1)
	assert.Equal(t, "Alena", response.Posts[0].Author.Name)
	mockUseCase.AssertExpectations(t)
}

func TestListPosts_QueryParams(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	// Clamping happens in the use case; the handler passes raw values through.
	mockUseCase.On("ListPosts", -2, 5000).Return(&entity.PostPage{Posts: []*entity.Post{}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts?page=-2&limit=5000", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreatePost(c)
	})

	post := &entity.Post{ID: "p-1", Title: "Kam s olejem", Content: "Do šedé popelnice.", AuthorID: "user-123", Published: true}
	mockUseCase.On("CreatePost", "user-123", "Kam s olejem", "Do šedé popelnice.").Return(post, nil)

	body := `{"title":"Kam s olejem","content":"Do šedé popelnice."}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_ValidationError(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreatePost(c)
	})

	mockUseCase.On("CreatePost", "user-123", "", "").
		Return(nil, fmt.Errorf("%w: missing post title or content", usecase.ErrValidation))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}
