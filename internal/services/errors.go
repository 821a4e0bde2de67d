package services

import (
	"errors"
)

var (
	// ErrInvalidAction is returned for a vote action outside {upvote, downvote}.
	ErrInvalidAction = errors.New("invalid vote action")
	// ErrUnauthorized is returned when a write requires an authenticated user.
	ErrUnauthorized = errors.New("authentication required")
	// ErrNotFound is returned when a referenced user, post or comment does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReplyDepth is returned when replying to a comment that is itself a reply.
	ErrReplyDepth = errors.New("replies can only be one level deep")
	// ErrParentMismatch is returned when a reply's parent belongs to another post.
	ErrParentMismatch = errors.New("parent comment belongs to a different post")
	// ErrEmptyContent is returned when a post or comment body is empty.
	ErrEmptyContent = errors.New("content must not be empty")
)
