package data

import "errors"

// Errors reported by note operations. Every one of them is recoverable: the
// command that raised it is abandoned and the tree is left unchanged unless
// the operation documents otherwise.
var (
	ErrInvalidMenuChoice = errors.New("invalid menu choice")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrNoteNotFound      = errors.New("note not found")
	ErrCannotDeleteRoot  = errors.New("cannot delete the root note")
	ErrDuplicateTitle    = errors.New("a note with this title already exists")
	ErrInvalidImagePath  = errors.New("unsupported image file")
)
