package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/repository/postgres"
	"github.com/mkarlsson/farmtrack/internal/service"
	"github.com/mkarlsson/farmtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalService_OwnershipScoping(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	animalService := service.NewAnimalService(repos.Animal)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	aliceAnimal := testutil.NewAnimalBuilder(alice.ID).WithName("Bella").Build(t, testDB.DB)
	testutil.NewAnimalBuilder(bob.ID).WithName("Rosa").Build(t, testDB.DB)

	t.Run("list returns only the caller's animals", func(t *testing.T) {
		animals, err := animalService.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, animals, 1)
		assert.Equal(t, "Bella", animals[0].Name)
		assert.Equal(t, alice.ID, animals[0].OwnerID)
	})

	t.Run("create stamps the caller as owner", func(t *testing.T) {
		animal, err := animalService.Create(ctx, alice.ID, service.AnimalInput{
			Name: "Majros",
			Type: "cow",
			Age:  5,
		})
		require.NoError(t, err)
		assert.Equal(t, alice.ID, animal.OwnerID)
	})

	t.Run("update of a foreign animal is not found", func(t *testing.T) {
		_, err := animalService.Update(ctx, bob.ID, aliceAnimal.ID, service.AnimalInput{
			Name: "Hijacked",
			Type: "cow",
			Age:  1,
		})
		assert.ErrorIs(t, err, service.ErrAnimalNotFound)
	})

	t.Run("update of a missing id is the same error", func(t *testing.T) {
		_, err := animalService.Update(ctx, bob.ID, uuid.New(), service.AnimalInput{
			Name: "Ghost",
			Type: "cow",
			Age:  1,
		})
		assert.ErrorIs(t, err, service.ErrAnimalNotFound)
	})

	t.Run("delete of a foreign animal is not found", func(t *testing.T) {
		err := animalService.Delete(ctx, bob.ID, aliceAnimal.ID)
		assert.ErrorIs(t, err, service.ErrAnimalNotFound)

		// Alice still owns it.
		animals, err := animalService.List(ctx, alice.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, animals)
	})

	t.Run("owner can update and delete", func(t *testing.T) {
		updated, err := animalService.Update(ctx, alice.ID, aliceAnimal.ID, service.AnimalInput{
			Name: "Bella",
			Type: "cow",
			Age:  4,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, updated.Age)

		require.NoError(t, animalService.Delete(ctx, alice.ID, aliceAnimal.ID))

		err = animalService.Delete(ctx, alice.ID, aliceAnimal.ID)
		assert.ErrorIs(t, err, service.ErrAnimalNotFound)
	})
}
