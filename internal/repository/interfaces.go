package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// The domain record repositories take the owner ID explicitly on every
// read and mutation: a lookup that doesn't match the owner behaves
// exactly like a lookup for an id that doesn't exist.

type AnimalRepository interface {
	Create(ctx context.Context, animal *domain.Animal) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Animal, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Animal, error)
	Update(ctx context.Context, animal *domain.Animal) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type IndividualRepository interface {
	Create(ctx context.Context, individual *domain.Individual) error
	ListByType(ctx context.Context, ownerID uuid.UUID, animalType domain.Species) ([]*domain.Individual, error)
	GetByID(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, id uuid.UUID) (*domain.Individual, error)
	GetByName(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, name string) (*domain.Individual, error)
	Update(ctx context.Context, individual *domain.Individual) error
	Delete(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	ListBySpecies(ctx context.Context, ownerID uuid.UUID, species domain.Species) ([]*domain.Note, error)
	ListByIndividual(ctx context.Context, ownerID, individualID uuid.UUID) ([]*domain.Note, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type Repositories struct {
	User       UserRepository
	Animal     AnimalRepository
	Individual IndividualRepository
	Note       NoteRepository
}
