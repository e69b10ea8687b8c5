package game

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError through errors.Is.
	ErrFormat       = errors.New("malformed level")
	ErrInvalidKey   = errors.New("invalid key")
	ErrNoHighScore  = errors.New("no high score recorded")
	ErrInvalidLevel = errors.New("invalid level index")
)

// FormatError reports a level description that could not be loaded.
type FormatError struct {
	Source string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("level %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("level %s: %s", e.Source, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
