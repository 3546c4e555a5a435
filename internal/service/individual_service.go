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

var ErrIndividualNotFound = errors.New("individual not found")

type IndividualService struct {
	individualRepo repository.IndividualRepository
}

func NewIndividualService(individualRepo repository.IndividualRepository) *IndividualService {
	return &IndividualService{individualRepo: individualRepo}
}

type IndividualInput struct {
	Name       string
	IDNumber   string
	AnimalType domain.Species
}

func (s *IndividualService) ListByType(ctx context.Context, ownerID uuid.UUID, animalType domain.Species) ([]*domain.Individual, error) {
	return s.individualRepo.ListByType(ctx, ownerID, animalType)
}

func (s *IndividualService) GetByName(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, name string) (*domain.Individual, error) {
	individual, err := s.individualRepo.GetByName(ctx, ownerID, animalType, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndividualNotFound
		}
		return nil, err
	}
	return individual, nil
}

func (s *IndividualService) Create(ctx context.Context, ownerID uuid.UUID, input IndividualInput) (*domain.Individual, error) {
	if !input.AnimalType.Valid() {
		return nil, domain.ErrInvalidSpecies
	}

	individual := &domain.Individual{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       input.Name,
		IDNumber:   input.IDNumber,
		AnimalType: input.AnimalType,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := s.individualRepo.Create(ctx, individual); err != nil {
		return nil, err
	}
	return individual, nil
}

// AddNote appends a dated entry to the individual's embedded notes and
// returns the updated individual.
func (s *IndividualService) AddNote(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, name, content string) (*domain.Individual, error) {
	individual, err := s.GetByName(ctx, ownerID, animalType, name)
	if err != nil {
		return nil, err
	}

	individual.AddNote(content, time.Now())
	individual.UpdatedAt = time.Now()

	if err := s.individualRepo.Update(ctx, individual); err != nil {
		return nil, err
	}
	return individual, nil
}

func (s *IndividualService) Update(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, id uuid.UUID, input IndividualInput) (*domain.Individual, error) {
	individual, err := s.individualRepo.GetByID(ctx, ownerID, animalType, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndividualNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		individual.Name = input.Name
	}
	if input.IDNumber != "" {
		individual.IDNumber = input.IDNumber
	}
	if input.AnimalType != "" {
		if !input.AnimalType.Valid() {
			return nil, domain.ErrInvalidSpecies
		}
		individual.AnimalType = input.AnimalType
	}
	individual.UpdatedAt = time.Now()

	if err := s.individualRepo.Update(ctx, individual); err != nil {
		return nil, err
	}
	return individual, nil
}

func (s *IndividualService) Delete(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, id uuid.UUID) error {
	err := s.individualRepo.Delete(ctx, ownerID, animalType, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrIndividualNotFound
	}
	return err
}
