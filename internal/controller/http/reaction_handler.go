package http

import (
	"net/http"

	"kamstim/internal/entity"
	"kamstim/internal/usecase"
	"kamstim/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	reactionUseCase usecase.ReactionUseCase
	logger          *logger.Logger
}

func NewReactionHandler(reactionUseCase usecase.ReactionUseCase, logger *logger.Logger) *ReactionHandler {
	return &ReactionHandler{
		reactionUseCase: reactionUseCase,
		logger:          logger,
	}
}

type ReactRequest struct {
	Type entity.ReactionType `json:"type"`
}

// React godoc
// @Summary      React to a post
// @Description  Create, switch or toggle off the caller's reaction on a post
// @Tags         reactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Param        request body ReactRequest true "Reaction type (LIKE, LOVE, LAUGH, WOW, SAD, ANGRY)"
// @Success      200  {object}  map[string]interface{}
// @Success      201  {object}  entity.Reaction
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{post_id}/reactions [post]
func (h *ReactionHandler) React(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	var req ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	outcome, reaction, err := h.reactionUseCase.React(userID, postID, req.Type)
	if err != nil {
		h.logger.Error("Failed to process reaction: %v", err)
		respondError(c, err)
		return
	}

	switch outcome {
	case entity.ReactionCreated:
		c.JSON(http.StatusCreated, reaction)
	case entity.ReactionUpdated:
		c.JSON(http.StatusOK, reaction)
	case entity.ReactionRemoved:
		c.JSON(http.StatusOK, gin.H{"message": "Reaction removed", "removed": true})
	}
}

// GetReactionCount godoc
// @Summary      Get reaction count for a post
// @Description  Number of reactions on a post, served from the Redis counter when warm
// @Tags         reactions
// @Accept       json
// @Produce      json
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts/{post_id}/reactions/count [get]
func (h *ReactionHandler) GetReactionCount(c *gin.Context) {
	postID := c.Param("post_id")

	count, err := h.reactionUseCase.GetReactionCount(postID)
	if err != nil {
		h.logger.Error("Failed to count reactions: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post_id": postID, "reactions_count": count})
}
