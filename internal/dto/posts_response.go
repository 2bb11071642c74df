package dto

import (
	"time"

	"github.com/ForumApp/content-service/internal/model"
)

type AuthorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PostResponse is the outbound projection of a post. It never carries
// comment rows or nested objects, only shallow references and the
// top-level comment count.
type PostResponse struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	CreatedAt    *string    `json:"createdAt"`
	Author       *AuthorRef `json:"author"`
	Hashtags     []NamedRef `json:"hashtags"`
	Community    *NamedRef  `json:"community"`
	Flag         *NamedRef  `json:"flag"`
	CommentCount int64      `json:"commentCount"`
}

type CommentResponse struct {
	ID         int64      `json:"id"`
	PostID     int64      `json:"postId"`
	ParentID   *int64     `json:"parentId"`
	Body       string     `json:"body"`
	CreatedAt  *string    `json:"createdAt"`
	Author     *AuthorRef `json:"author"`
	ReplyCount int64      `json:"replyCount"`
}

func NewPostResponse(p *model.FullPost) PostResponse {
	resp := PostResponse{
		ID:           p.Post.ID,
		Title:        p.Post.Title,
		Body:         p.Post.Body,
		CreatedAt:    formatTime(p.Post.CreatedAt),
		Author:       newAuthorRef(p.Author),
		Hashtags:     make([]NamedRef, 0, len(p.Hashtags)),
		Community:    newNamedRef(p.Community),
		Flag:         newNamedRef(p.Flag),
		CommentCount: p.CommentCount,
	}
	for _, h := range p.Hashtags {
		resp.Hashtags = append(resp.Hashtags, NamedRef{ID: h.ID, Name: h.Name})
	}
	return resp
}

func NewPostResponses(posts []*model.FullPost) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}

func NewCommentResponse(c *model.FullComment) CommentResponse {
	return CommentResponse{
		ID:         c.Comment.ID,
		PostID:     c.Comment.PostID,
		ParentID:   c.Comment.ParentID,
		Body:       c.Comment.Body,
		CreatedAt:  formatTime(c.Comment.CreatedAt),
		Author:     newAuthorRef(c.Author),
		ReplyCount: c.ReplyCount,
	}
}

func NewCommentResponses(comments []*model.FullComment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}

func newAuthorRef(u *model.CachedUser) *AuthorRef {
	if u == nil {
		return nil
	}
	return &AuthorRef{ID: u.ID, Name: u.Name}
}

func newNamedRef(n *model.NamedRef) *NamedRef {
	if n == nil {
		return nil
	}
	return &NamedRef{ID: n.ID, Name: n.Name}
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
