package entity

import "time"

type ReactionType string

const (
	ReactionLike  ReactionType = "LIKE"
	ReactionLove  ReactionType = "LOVE"
	ReactionLaugh ReactionType = "LAUGH"
	ReactionWow   ReactionType = "WOW"
	ReactionSad   ReactionType = "SAD"
	ReactionAngry ReactionType = "ANGRY"
)

func (t ReactionType) Valid() bool {
	switch t {
	case ReactionLike, ReactionLove, ReactionLaugh, ReactionWow, ReactionSad, ReactionAngry:
		return true
	}
	return false
}

// Reaction is a single sentiment a user attaches to a post. The store keeps
// at most one row per (user, post) pair.
type Reaction struct {
	ID        string       `json:"id"`
	Type      ReactionType `json:"type"`
	UserID    string       `json:"user_id"`
	PostID    string       `json:"post_id"`
	User      *User        `json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ReactionOutcome reports which transition a reaction request took.
type ReactionOutcome string

const (
	ReactionCreated ReactionOutcome = "created"
	ReactionUpdated ReactionOutcome = "updated"
	ReactionRemoved ReactionOutcome = "removed"
)
