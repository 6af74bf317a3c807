package repo

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrCorrupt  = errors.New("stored data is unreadable")
)
