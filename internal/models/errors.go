package models

import (
	"errors"
)

var (
	ErrUserNotFound = errors.New("models: user not found")
	ErrInvalidToken = errors.New("models: invalid token")
)
