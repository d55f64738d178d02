package service

import "errors"

var (
	ErrIDRequired          = errors.New("id is required")
	ErrNotFound            = errors.New("document not found")
	ErrReaderNil           = errors.New("reader is nil")
	ErrFileMissing         = errors.New("file not found on the server")
	ErrPreviewNotSupported = errors.New("preview for this file type is not supported")

	ErrLinkNotFound    = errors.New("share link not found")
	ErrLinkExpired     = errors.New("this share link has expired")
	ErrInvalidDuration = errors.New("invalid duration")
)
