package model

import "time"

type Post struct {
	ID          int64     `json:"id"`
	AuthorID    *int64    `json:"author_id"`
	CommunityID *int64    `json:"community_id"`
	FlagID      *int64    `json:"flag_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

// FullPost is the read model for a post: the row plus every shallow
// reference the projection needs, and the top-level comment count
// instead of the comment rows themselves.
type FullPost struct {
	Post         Post        `json:"post"`
	Author       *CachedUser `json:"author"`
	Hashtags     []NamedRef  `json:"hashtags"`
	Community    *NamedRef   `json:"community"`
	Flag         *NamedRef   `json:"flag"`
	CommentCount int64       `json:"comment_count"`
}
