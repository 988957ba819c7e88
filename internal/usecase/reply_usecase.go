package usecase

import (
	"fmt"
	"strings"

	"kamstim/internal/entity"
	"kamstim/internal/repo/persistent"
	"kamstim/pkg/logger"
	"kamstim/pkg/queue"
)

type ReplyUseCase interface {
	CreateReply(userID, postID, content string) (*entity.Reply, error)
}

type replyUseCase struct {
	replyRepo   persistent.ReplyRepository
	postRepo    persistent.PostRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewReplyUseCase(
	replyRepo persistent.ReplyRepository,
	postRepo persistent.PostRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) ReplyUseCase {
	return &replyUseCase{
		replyRepo:   replyRepo,
		postRepo:    postRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *replyUseCase) CreateReply(userID, postID, content string) (*entity.Reply, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: missing reply content", ErrValidation)
	}

	// Check the post up front so a dangling reference surfaces as a clean
	// not-found instead of a foreign-key violation.
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}

	reply := &entity.Reply{
		Content:  content,
		AuthorID: userID,
		PostID:   postID,
	}

	if err := uc.replyRepo.Create(reply); err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}

	uc.notifyAuthor(userID, postID)
	return reply, nil
}

func (uc *replyUseCase) notifyAuthor(userID, postID string) {
	if uc.queueClient == nil {
		return
	}

	authorID, err := uc.postRepo.GetAuthorID(postID)
	if err != nil || authorID == "" || authorID == userID {
		return
	}

	go func() {
		task := map[string]interface{}{
			"type":     "reply",
			"user_id":  authorID,
			"actor_id": userID,
			"post_id":  postID,
		}
		if err := uc.queueClient.PublishActivityTask(task); err != nil {
			uc.logger.Error("Failed to publish reply activity task: %v", err)
		}
	}()
}
