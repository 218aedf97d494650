package domain

import "errors"

var (
	ErrArticleNotFound        = errors.New("article not found")
	ErrSlugTaken              = errors.New("slug already in use")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrTagNotFound            = errors.New("tag not found")
	ErrAuthorNotFound         = errors.New("author not found")
	ErrAuthorAlreadyExists    = errors.New("author already exists")
	ErrCommentNotFound        = errors.New("comment not found")
	ErrAlreadySubscribed      = errors.New("email already subscribed")
	ErrSubscriptionNotFound   = errors.New("subscription not found")
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrSettingsNotFound       = errors.New("site settings not configured")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrTokenExpired           = errors.New("token expired")
	ErrTokenInvalid           = errors.New("token invalid")
)
