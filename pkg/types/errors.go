package types

import "errors"

// Storage lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrNotFound    = errors.New("not found")
	ErrInvalidID   = errors.New("invalid id")
)

// Domain lookup and validation errors.
var (
	ErrAreaNotFound     = errors.New("area not found")
	ErrPlantNotFound    = errors.New("plant not found")
	ErrEntryNotFound    = errors.New("journal entry not found")
	ErrInvalidName      = errors.New("name must not be empty")
	ErrEmptyEntryText   = errors.New("journal entry text must not be empty")
	ErrInvalidStage     = errors.New("unknown growth stage")
	ErrStageNotAdjacent = errors.New("stage transition must move to the adjacent stage")
)
