package service

import "errors"

var (
	ErrStateNotFound = errors.New("state not found")
)
