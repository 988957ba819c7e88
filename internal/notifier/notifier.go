package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kamstim/internal/entity"
	"kamstim/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	maxStoredNotifications = 99
	notificationTTL        = 30 * 24 * time.Hour
)

// Notifier turns post-activity tasks from the queue into per-user
// notifications stored in Redis. The list keeps the latest items; a pub/sub
// message on the same key lets connected clients pick them up live.
type Notifier struct {
	redisClient *redis.Client
	logger      *logger.Logger
}

func New(redisClient *redis.Client, logger *logger.Logger) *Notifier {
	return &Notifier{
		redisClient: redisClient,
		logger:      logger,
	}
}

// HandleActivityTask processes one task from the activity queue. Unknown
// task types are dropped rather than requeued.
func (n *Notifier) HandleActivityTask(task map[string]interface{}) error {
	userID, _ := task["user_id"].(string)
	if userID == "" {
		n.logger.Warn("Dropping activity task without user_id: %v", task)
		return nil
	}

	title, message, ok := formatActivity(task)
	if !ok {
		n.logger.Warn("Dropping activity task with unknown type: %v", task["type"])
		return nil
	}

	notification := &entity.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      fmt.Sprintf("%v", task["type"]),
		Data:      task,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return n.deliver(notification)
}

// GetNotifications returns a window of the stored notifications for a user,
// newest first.
func (n *Notifier) GetNotifications(userID string, limit, offset int) ([]entity.Notification, int64, error) {
	ctx := context.Background()
	key := notificationsKey(userID)

	items, err := n.redisClient.LRange(ctx, key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(items))
	for _, item := range items {
		var notification entity.Notification
		if err := json.Unmarshal([]byte(item), &notification); err == nil {
			notifications = append(notifications, notification)
		}
	}

	total, _ := n.redisClient.LLen(ctx, key).Result()
	return notifications, total, nil
}

func (n *Notifier) deliver(notification *entity.Notification) error {
	notificationJSON, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx := context.Background()
	key := notificationsKey(notification.UserID)
	if err := n.redisClient.LPush(ctx, key, notificationJSON).Err(); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	n.redisClient.LTrim(ctx, key, 0, maxStoredNotifications)
	n.redisClient.Expire(ctx, key, notificationTTL)

	if err := n.redisClient.Publish(ctx, key, notificationJSON).Err(); err != nil {
		n.logger.Warn("Failed to publish notification for user %s: %v", notification.UserID, err)
	}

	n.logger.Info("Delivered %s notification to user %s", notification.Type, notification.UserID)
	return nil
}

func notificationsKey(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

func formatActivity(task map[string]interface{}) (title, message string, ok bool) {
	switch task["type"] {
	case "reaction":
		reactionType, _ := task["reaction_type"].(string)
		return "Nová reakce", fmt.Sprintf("Někdo reagoval na váš příspěvek (%s).", reactionType), true
	case "reply":
		return "Nová odpověď", "Někdo odpověděl na váš příspěvek.", true
	}
	return "", "", false
}
