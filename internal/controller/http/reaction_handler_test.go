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

// MockReactionUseCase is a mock implementation of ReactionUseCase
type MockReactionUseCase struct {
	mock.Mock
}

func (m *MockReactionUseCase) React(userID, postID string, reactionType entity.ReactionType) (entity.ReactionOutcome, *entity.Reaction, error) {
	args := m.Called(userID, postID, reactionType)
	if args.Get(1) == nil {
		return args.Get(0).(entity.ReactionOutcome), nil, args.Error(2)
	}
	return args.Get(0).(entity.ReactionOutcome), args.Get(1).(*entity.Reaction), args.Error(2)
}

func (m *MockReactionUseCase) GetReactionCount(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.ReactionUseCase = (*MockReactionUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func reactionRouter(handler *ReactionHandler, userID string) *gin.Engine {
	router := setupTestRouter()
	router.POST("/posts/:post_id/reactions", func(c *gin.Context) {
		c.Set("user_id", userID)
		handler.React(c)
	})
	router.GET("/posts/:post_id/reactions/count", handler.GetReactionCount)
	return router
}

func TestReact_Created(t *testing.T) {
	mockUseCase := new(MockReactionUseCase)
	handler := NewReactionHandler(mockUseCase, logger.New())
	router := reactionRouter(handler, "user-123")

	reaction := &entity.Reaction{ID: "r-1", Type: entity.ReactionLike, UserID: "user-123", PostID: "post-123"}
	mockUseCase.On("React", "user-123", "post-123", entity.ReactionLike).
		Return(entity.ReactionCreated, reaction, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/reactions", bytes.NewBufferString(`{"type":"LIKE"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response entity.Reaction
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, entity.ReactionLike, response.Type)
	mockUseCase.AssertExpectations(t)
}

func TestReact_Removed(t *testing.T) {
	mockUseCase := new(MockReactionUseCase)
	handler := NewReactionHandler(mockUseCase, logger.New())
	router := reactionRouter(handler, "user-123")

	mockUseCase.On("React", "user-123", "post-123", entity.ReactionLike).
		Return(entity.ReactionRemoved, nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/reactions", bytes.NewBufferString(`{"type":"LIKE"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Reaction removed", response["message"])
	assert.Equal(t, true, response["removed"])
	mockUseCase.AssertExpectations(t)
}

func TestReact_Updated(t *testing.T) {
	mockUseCase := new(MockReactionUseCase)
	handler := NewReactionHandler(mockUseCase, logger.New())
	router := reactionRouter(handler, "user-123")

	reaction := &entity.Reaction{ID: "r-1", Type: entity.ReactionWow, UserID: "user-123", PostID: "post-123"}
	mockUseCase.On("React", "user-123", "post-123", entity.ReactionWow).
		Return(entity.ReactionUpdated, reaction, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/reactions", bytes.NewBufferString(`{"type":"WOW"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestReact_PostNotFound(t *testing.T) {
	mockUseCase := new(MockReactionUseCase)
	handler := NewReactionHandler(mockUseCase, logger.New())
	router := reactionRouter(handler, "user-123")

	mockUseCase.On("React", "user-123", "post-missing", entity.ReactionLike).
		Return(entity.ReactionOutcome(""), nil, fmt.Errorf("%w: post post-missing", usecase.ErrNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-missing/reactions", bytes.NewBufferString(`{"type":"LIKE"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestReact_InvalidType(t *testing.T) {
	mockUseCase := new(MockReactionUseCase)
	handler := NewReactionHandler(mockUseCase, logger.New())
	router := reactionRouter(handler, "user-123")

	mockUseCase.On("React", "user-123", "post-123", entity.ReactionType("SPARKLE")).
		Return(entity.ReactionOutcome(""), nil, fmt.Errorf("%w: missing or unknown reaction type", usecase.ErrValidation))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/reactions", bytes.NewBufferString(`{"type":"SPARKLE"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetReactionCount(t *testing.T) {
	mockUseCase := new(MockReactionUseCase)
	handler := NewReactionHandler(mockUseCase, logger.New())
	router := reactionRouter(handler, "")

	mockUseCase.On("GetReactionCount", "post-123").Return(int64(5), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-123/reactions/count", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(5), response["reactions_count"])
	mockUseCase.AssertExpectations(t)
}
