package service

import "errors"

var (
	ErrInternal        = errors.New("internal server error")
	ErrPostIDRequired  = errors.New("postId is required")
	ErrInvalidPostID   = errors.New("invalid postId")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)
