package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/domain"
	"github.com/mkarlsson/farmtrack/internal/repository"
	"gorm.io/gorm"
)

var ErrAnimalNotFound = errors.New("animal not found")

type AnimalService struct {
	animalRepo repository.AnimalRepository
}

func NewAnimalService(animalRepo repository.AnimalRepository) *AnimalService {
	return &AnimalService{animalRepo: animalRepo}
}

type AnimalInput struct {
	Name string
	Type string
	Age  int
}

func (s *AnimalService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Animal, error) {
	return s.animalRepo.ListByOwner(ctx, ownerID)
}

func (s *AnimalService) Create(ctx context.Context, ownerID uuid.UUID, input AnimalInput) (*domain.Animal, error) {
	animal := &domain.Animal{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      input.Name,
		Type:      input.Type,
		Age:       input.Age,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.animalRepo.Create(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

func (s *AnimalService) Update(ctx context.Context, ownerID, id uuid.UUID, input AnimalInput) (*domain.Animal, error) {
	animal, err := s.animalRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}

	animal.Name = input.Name
	animal.Type = input.Type
	animal.Age = input.Age
	animal.UpdatedAt = time.Now()

	if err := s.animalRepo.Update(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

func (s *AnimalService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	err := s.animalRepo.Delete(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAnimalNotFound
	}
	return err
}
