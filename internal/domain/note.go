package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoteTargetKind discriminates what a note is attached to.
type NoteTargetKind int

const (
	TargetSpecies NoteTargetKind = iota + 1
	TargetIndividual
)

// NoteTarget is a tagged union: a note references either a species
// category or a specific individual, never both and never neither.
// The zero value is invalid; use SpeciesTarget or IndividualTarget.
type NoteTarget struct {
	kind         NoteTargetKind
	species      Species
	individualID uuid.UUID
}

func SpeciesTarget(s Species) NoteTarget {
	return NoteTarget{kind: TargetSpecies, species: s}
}

func IndividualTarget(id uuid.UUID) NoteTarget {
	return NoteTarget{kind: TargetIndividual, individualID: id}
}

func (t NoteTarget) Kind() NoteTargetKind { return t.kind }

func (t NoteTarget) Species() (Species, bool) {
	return t.species, t.kind == TargetSpecies
}

func (t NoteTarget) IndividualID() (uuid.UUID, bool) {
	return t.individualID, t.kind == TargetIndividual
}

// ParseNoteTarget builds a target from the two optional wire fields,
// rejecting the "both" and "neither" combinations.
func ParseNoteTarget(species string, individualID *uuid.UUID) (NoteTarget, error) {
	switch {
	case species != "" && individualID != nil:
		return NoteTarget{}, ErrInvalidNoteTarget
	case species != "":
		s, err := ParseSpecies(species)
		if err != nil {
			return NoteTarget{}, err
		}
		return SpeciesTarget(s), nil
	case individualID != nil:
		return IndividualTarget(*individualID), nil
	default:
		return NoteTarget{}, ErrInvalidNoteTarget
	}
}

// Note is a titled free-text record attached to a species or an
// individual. Species and IndividualID are the persistence projection
// of the target union; construct notes through NewNote.
type Note struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID      uuid.UUID  `json:"ownerId" gorm:"type:uuid;not null;index:idx_notes_owner_species;index:idx_notes_owner_individual"`
	Title        string     `json:"title" gorm:"not null"`
	Content      string     `json:"content" gorm:"not null"`
	Species      *Species   `json:"species,omitempty" gorm:"index:idx_notes_owner_species"`
	IndividualID *uuid.UUID `json:"individualId,omitempty" gorm:"type:uuid;index:idx_notes_owner_individual"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func NewNote(ownerID uuid.UUID, title, content string, target NoteTarget) (*Note, error) {
	note := &Note{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	}
	switch target.kind {
	case TargetSpecies:
		s := target.species
		note.Species = &s
	case TargetIndividual:
		id := target.individualID
		note.IndividualID = &id
	default:
		return nil, ErrInvalidNoteTarget
	}
	return note, nil
}

// Target reconstructs the union from the persisted columns.
func (n *Note) Target() NoteTarget {
	if n.IndividualID != nil {
		return IndividualTarget(*n.IndividualID)
	}
	if n.Species != nil {
		return SpeciesTarget(*n.Species)
	}
	return NoteTarget{}
}
