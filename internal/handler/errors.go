package handler

import "errors"

var (
	errNotAuthorized        = errors.New("user is not authorized")
	errInvalidPostID        = errors.New("invalid post ID")
	errInvalidCommentID     = errors.New("invalid comment ID")
	errInvalidCommunityID   = errors.New("invalid community ID")
	errPageAndSizeMustBeInt = errors.New("page and size must be int")
)
