package persistent

import (
	"kamstim/internal/entity"
	"kamstim/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Password:  m.Password,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Name:      e.Name,
		Password:  e.Password,
		AvatarURL: e.AvatarURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Published: m.Published,
		AuthorID:  m.AuthorID,
		Author:    ToUserEntity(m.Author),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.Reactions) > 0 {
		post.Reactions = make([]entity.Reaction, len(m.Reactions))
		for i := range m.Reactions {
			post.Reactions[i] = *ToReactionEntity(&m.Reactions[i])
		}
	}

	if len(m.Replies) > 0 {
		post.Replies = make([]entity.Reply, len(m.Replies))
		for i := range m.Replies {
			post.Replies[i] = *ToReplyEntity(&m.Replies[i])
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Published: e.Published,
		AuthorID:  e.AuthorID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToReplyEntity(m *model.ReplyModel) *entity.Reply {
	if m == nil {
		return nil
	}

	return &entity.Reply{
		ID:        m.ID,
		Content:   m.Content,
		AuthorID:  m.AuthorID,
		PostID:    m.PostID,
		Author:    ToUserEntity(m.Author),
		CreatedAt: m.CreatedAt,
	}
}

func ToReactionEntity(m *model.ReactionModel) *entity.Reaction {
	if m == nil {
		return nil
	}

	return &entity.Reaction{
		ID:        m.ID,
		Type:      entity.ReactionType(m.Type),
		UserID:    m.UserID,
		PostID:    m.PostID,
		User:      ToUserEntity(m.User),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAccountEntity(m *model.AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	return &entity.Account{
		ID:                m.ID,
		Provider:          m.Provider,
		ProviderAccountID: m.ProviderAccountID,
		UserID:            m.UserID,
		CreatedAt:         m.CreatedAt,
	}
}
