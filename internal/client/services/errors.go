package services

import "errors"

var (
	ErrBusy             = errors.New("another session operation is in progress")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoVideo          = errors.New("no video attached")
	ErrUnknownComment   = errors.New("unknown comment")
	ErrRepliesLoading   = errors.New("replies are loading")
	ErrNotExpandable    = errors.New("comment has no expandable replies")
	ErrNoReplyTarget    = errors.New("no comment selected for reply")
	ErrEmptyReply       = errors.New("reply is empty")
	ErrEmptyComment     = errors.New("comment is empty")
)
