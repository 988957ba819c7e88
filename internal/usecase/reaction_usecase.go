package usecase

import (
	"context"
	"errors"
	"fmt"

	"kamstim/internal/entity"
	"kamstim/internal/repo/persistent"
	"kamstim/pkg/logger"
	"kamstim/pkg/queue"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ReactionUseCase interface {
	React(userID, postID string, reactionType entity.ReactionType) (entity.ReactionOutcome, *entity.Reaction, error)
	GetReactionCount(postID string) (int64, error)
}

type reactionUseCase struct {
	reactionRepo persistent.ReactionRepository
	postRepo     persistent.PostRepository
	redisClient  *redis.Client
	queueClient  *queue.Client
	logger       *logger.Logger
}

func NewReactionUseCase(
	reactionRepo persistent.ReactionRepository,
	postRepo persistent.PostRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) ReactionUseCase {
	return &reactionUseCase{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		redisClient:  redisClient,
		queueClient:  queueClient,
		logger:       logger,
	}
}

// React converges the (user, post) reaction row: no row creates one, the
// same type toggles it off, a different type switches it in place. Exactly
// one write per call.
func (uc *reactionUseCase) React(userID, postID string, reactionType entity.ReactionType) (entity.ReactionOutcome, *entity.Reaction, error) {
	if !reactionType.Valid() {
		return "", nil, fmt.Errorf("%w: missing or unknown reaction type", ErrValidation)
	}

	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return "", nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}

	existing, err := uc.reactionRepo.GetByUserAndPost(userID, postID)
	switch {
	case err == nil:
		return uc.transition(existing, reactionType)

	case errors.Is(err, gorm.ErrRecordNotFound):
		reaction := &entity.Reaction{
			Type:   reactionType,
			UserID: userID,
			PostID: postID,
		}
		if createErr := uc.reactionRepo.Create(reaction); createErr != nil {
			// A concurrent request won the insert; the unique constraint on
			// (user_id, post_id) is the arbiter. Retry as an update against
			// the surviving row.
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				winner, getErr := uc.reactionRepo.GetByUserAndPost(userID, postID)
				if getErr != nil {
					return "", nil, fmt.Errorf("failed to resolve concurrent reaction: %w", getErr)
				}
				updated, updErr := uc.reactionRepo.UpdateType(winner.ID, reactionType)
				if updErr != nil {
					return "", nil, fmt.Errorf("failed to update reaction: %w", updErr)
				}
				return entity.ReactionUpdated, updated, nil
			}
			return "", nil, fmt.Errorf("failed to create reaction: %w", createErr)
		}

		uc.adjustCounter(postID, 1)
		uc.notifyAuthor(userID, postID, string(reactionType))
		return entity.ReactionCreated, reaction, nil

	default:
		return "", nil, fmt.Errorf("failed to look up reaction: %w", err)
	}
}

func (uc *reactionUseCase) transition(existing *entity.Reaction, reactionType entity.ReactionType) (entity.ReactionOutcome, *entity.Reaction, error) {
	if existing.Type == reactionType {
		if err := uc.reactionRepo.Delete(existing.ID); err != nil {
			return "", nil, fmt.Errorf("failed to remove reaction: %w", err)
		}
		uc.adjustCounter(existing.PostID, -1)
		return entity.ReactionRemoved, nil, nil
	}

	updated, err := uc.reactionRepo.UpdateType(existing.ID, reactionType)
	if err != nil {
		return "", nil, fmt.Errorf("failed to update reaction: %w", err)
	}
	return entity.ReactionUpdated, updated, nil
}

func (uc *reactionUseCase) GetReactionCount(postID string) (int64, error) {
	ctx := context.Background()
	redisKey := fmt.Sprintf("post:reactions:%s", postID)

	if uc.redisClient != nil {
		if count, err := uc.redisClient.Get(ctx, redisKey).Int64(); err == nil {
			return count, nil
		}
	}

	count, err := uc.reactionRepo.CountByPost(postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, redisKey, count, 0)
	}
	return count, nil
}

func (uc *reactionUseCase) adjustCounter(postID string, delta int64) {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	redisKey := fmt.Sprintf("post:reactions:%s", postID)
	if delta > 0 {
		uc.redisClient.Incr(ctx, redisKey)
	} else {
		uc.redisClient.Decr(ctx, redisKey)
	}
}

func (uc *reactionUseCase) notifyAuthor(userID, postID, reactionType string) {
	if uc.queueClient == nil {
		return
	}

	authorID, err := uc.postRepo.GetAuthorID(postID)
	if err != nil || authorID == "" || authorID == userID {
		return
	}

	go func() {
		task := map[string]interface{}{
			"type":          "reaction",
			"user_id":       authorID,
			"actor_id":      userID,
			"post_id":       postID,
			"reaction_type": reactionType,
		}
		if err := uc.queueClient.PublishActivityTask(task); err != nil {
			uc.logger.Error("Failed to publish reaction activity task: %v", err)
		}
	}()
}
