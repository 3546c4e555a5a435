package domain

import "errors"

var (
	ErrInvalidSpecies    = errors.New("invalid species")
	ErrInvalidNoteTarget = errors.New("note must reference exactly one of species or individual")
)
