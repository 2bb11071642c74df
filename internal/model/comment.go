package model

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	ParentID  *int64    `json:"parent_id"`
	PostID    int64     `json:"post_id"`
	AuthorID  *int64    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// FullComment carries the direct-children count, never the children.
type FullComment struct {
	Comment    Comment     `json:"comment"`
	Author     *CachedUser `json:"author"`
	ReplyCount int64       `json:"reply_count"`
}
