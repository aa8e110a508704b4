package domain

import "errors"

var (
	ErrInvalidID = errors.New("invalid object id")
	ErrNotFound  = errors.New("not found")
)
