package domain

import "errors"

var (
	ErrDuplicateEntry      = errors.New("duplicate entry")
	ErrNotFound            = errors.New("not found")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
