package model

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrPartNotFound      = errors.New("part not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderConflict     = errors.New("order already delivered")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidCollection = errors.New("invalid collection")
)
