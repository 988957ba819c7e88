package entity

import "time"

// Post is a blog entry. There is no draft workflow: posts are published at
// creation and listed immediately.
type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Published bool       `json:"published"`
	AuthorID  string     `json:"author_id"`
	Author    *User      `json:"author,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty"`
	Replies   []Reply    `json:"replies,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Reply struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	PostID    string    `json:"post_id"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PostPage is one window over the published post listing.
type PostPage struct {
	Posts []*Post `json:"posts"`
	Total int64   `json:"total"`
	Pages int64   `json:"pages"`
}
