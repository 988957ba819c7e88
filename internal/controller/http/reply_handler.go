package http

import (
	"net/http"

	"kamstim/internal/usecase"
	"kamstim/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	replyUseCase usecase.ReplyUseCase
	logger       *logger.Logger
}

func NewReplyHandler(replyUseCase usecase.ReplyUseCase, logger *logger.Logger) *ReplyHandler {
	return &ReplyHandler{
		replyUseCase: replyUseCase,
		logger:       logger,
	}
}

type CreateReplyRequest struct {
	Content string `json:"content"`
}

// CreateReply godoc
// @Summary      Reply to a post
// @Tags         replies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Param        request body CreateReplyRequest true "Reply content"
// @Success      201  {object}  entity.Reply
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{post_id}/replies [post]
func (h *ReplyHandler) CreateReply(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	var req CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reply, err := h.replyUseCase.CreateReply(userID, postID, req.Content)
	if err != nil {
		h.logger.Error("Failed to create reply: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}
