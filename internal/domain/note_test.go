package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecies(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Species
		wantErr bool
	}{
		{name: "cattle", raw: "cattle", want: SpeciesCattle},
		{name: "goat", raw: "goat", want: SpeciesGoat},
		{name: "poultry", raw: "poultry", want: SpeciesPoultry},
		{name: "unknown", raw: "dragon", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "case sensitive", raw: "Cattle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpecies(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpecies)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNoteTarget(t *testing.T) {
	individualID := uuid.New()

	tests := []struct {
		name         string
		species      string
		individualID *uuid.UUID
		wantErr      error
		wantKind     NoteTargetKind
	}{
		{
			name:     "species target",
			species:  "goat",
			wantKind: TargetSpecies,
		},
		{
			name:         "individual target",
			individualID: &individualID,
			wantKind:     TargetIndividual,
		},
		{
			name:    "neither",
			wantErr: ErrInvalidNoteTarget,
		},
		{
			name:         "both",
			species:      "goat",
			individualID: &individualID,
			wantErr:      ErrInvalidNoteTarget,
		},
		{
			name:    "invalid species",
			species: "dragon",
			wantErr: ErrInvalidSpecies,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := ParseNoteTarget(tt.species, tt.individualID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, target.Kind())
		})
	}
}

func TestNewNote_TargetProjection(t *testing.T) {
	ownerID := uuid.New()

	t.Run("species note", func(t *testing.T) {
		note, err := NewNote(ownerID, "Vaccination", "First round done", SpeciesTarget(SpeciesCattle))
		require.NoError(t, err)

		require.NotNil(t, note.Species)
		assert.Equal(t, SpeciesCattle, *note.Species)
		assert.Nil(t, note.IndividualID)

		s, ok := note.Target().Species()
		assert.True(t, ok)
		assert.Equal(t, SpeciesCattle, s)
	})

	t.Run("individual note", func(t *testing.T) {
		individualID := uuid.New()
		note, err := NewNote(ownerID, "Limping", "Left hind leg", IndividualTarget(individualID))
		require.NoError(t, err)

		require.NotNil(t, note.IndividualID)
		assert.Equal(t, individualID, *note.IndividualID)
		assert.Nil(t, note.Species)

		id, ok := note.Target().IndividualID()
		assert.True(t, ok)
		assert.Equal(t, individualID, id)
	})

	t.Run("zero-value target rejected", func(t *testing.T) {
		_, err := NewNote(ownerID, "t", "c", NoteTarget{})
		assert.ErrorIs(t, err, ErrInvalidNoteTarget)
	})
}
