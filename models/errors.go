package models

import "errors"

var (
	ErrLoadFailed       = errors.New("country list load failed")
	ErrUpstreamStatus   = errors.New("unexpected upstream status")
	ErrMalformedPayload = errors.New("malformed country payload")
	ErrStillLoading     = errors.New("country list is still loading")
	ErrQueryTooLong     = errors.New("search query is too long")
)
