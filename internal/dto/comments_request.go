package dto

type CreateCommentRequest struct {
	PostID   OptionalID `json:"postId"`
	Body     string     `json:"body"`
	AuthorID OptionalID `json:"authorId"`
	ParentID OptionalID `json:"parentId"`
}
