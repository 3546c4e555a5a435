package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/domain"
	"github.com/mkarlsson/farmtrack/internal/repository/postgres"
	"github.com/mkarlsson/farmtrack/internal/service"
	"github.com/mkarlsson/farmtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	noteService := service.NewNoteService(repos.Note)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	individual := testutil.NewIndividualBuilder(owner.ID).Build(t, testDB.DB)

	t.Run("species note round-trips", func(t *testing.T) {
		created, err := noteService.Create(ctx, owner.ID, "Feed change", "Switched to winter feed",
			domain.SpeciesTarget(domain.SpeciesGoat))
		require.NoError(t, err)
		assert.Equal(t, owner.ID, created.OwnerID)

		notes, err := noteService.ListBySpecies(ctx, owner.ID, domain.SpeciesGoat)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, created.ID, notes[0].ID)
		assert.Equal(t, "Feed change", notes[0].Title)
		assert.Equal(t, "Switched to winter feed", notes[0].Content)

		s, ok := notes[0].Target().Species()
		assert.True(t, ok)
		assert.Equal(t, domain.SpeciesGoat, s)
	})

	t.Run("individual note round-trips", func(t *testing.T) {
		created, err := noteService.Create(ctx, owner.ID, "Hoof trim", "Scheduled for Friday",
			domain.IndividualTarget(individual.ID))
		require.NoError(t, err)

		notes, err := noteService.ListByIndividual(ctx, owner.ID, individual.ID)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, created.ID, notes[0].ID)

		id, ok := notes[0].Target().IndividualID()
		assert.True(t, ok)
		assert.Equal(t, individual.ID, id)
	})

	t.Run("missing title or content rejected", func(t *testing.T) {
		_, err := noteService.Create(ctx, owner.ID, "", "content",
			domain.SpeciesTarget(domain.SpeciesGoat))
		assert.ErrorIs(t, err, service.ErrNoteFieldsEmpty)

		_, err = noteService.Create(ctx, owner.ID, "title", "",
			domain.SpeciesTarget(domain.SpeciesGoat))
		assert.ErrorIs(t, err, service.ErrNoteFieldsEmpty)
	})

	t.Run("lists are newest first", func(t *testing.T) {
		testDB.Truncate(t)
		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		first, err := noteService.Create(ctx, owner.ID, "first", "content",
			domain.SpeciesTarget(domain.SpeciesCattle))
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
		second, err := noteService.Create(ctx, owner.ID, "second", "content",
			domain.SpeciesTarget(domain.SpeciesCattle))
		require.NoError(t, err)

		notes, err := noteService.ListBySpecies(ctx, owner.ID, domain.SpeciesCattle)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, second.ID, notes[0].ID)
		assert.Equal(t, first.ID, notes[1].ID)
	})
}

func TestNoteService_OwnershipScoping(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	noteService := service.NewNoteService(repos.Note)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	aliceNote, err := noteService.Create(ctx, alice.ID, "private", "alice only",
		domain.SpeciesTarget(domain.SpeciesPoultry))
	require.NoError(t, err)

	t.Run("foreign note is invisible in lists", func(t *testing.T) {
		notes, err := noteService.ListBySpecies(ctx, bob.ID, domain.SpeciesPoultry)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("foreign update and delete are not found", func(t *testing.T) {
		_, err := noteService.Update(ctx, bob.ID, aliceNote.ID, "stolen", "text")
		assert.ErrorIs(t, err, service.ErrNoteNotFound)

		err = noteService.Delete(ctx, bob.ID, aliceNote.ID)
		assert.ErrorIs(t, err, service.ErrNoteNotFound)

		err = noteService.Delete(ctx, bob.ID, uuid.New())
		assert.ErrorIs(t, err, service.ErrNoteNotFound)
	})

	t.Run("owner update keeps the target", func(t *testing.T) {
		updated, err := noteService.Update(ctx, alice.ID, aliceNote.ID, "renamed", "new text")
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Title)

		s, ok := updated.Target().Species()
		assert.True(t, ok)
		assert.Equal(t, domain.SpeciesPoultry, s)
	})
}
