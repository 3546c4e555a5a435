package domain

import "fmt"

// Species is the set of animal categories FarmTrack tracks.
type Species string

const (
	SpeciesCattle  Species = "cattle"
	SpeciesGoat    Species = "goat"
	SpeciesPoultry Species = "poultry"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesCattle, SpeciesGoat, SpeciesPoultry:
		return true
	}
	return false
}

func ParseSpecies(raw string) (Species, error) {
	s := Species(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSpecies, raw)
	}
	return s, nil
}
