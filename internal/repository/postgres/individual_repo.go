package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/domain"
	"gorm.io/gorm"
)

type individualRepository struct {
	db *gorm.DB
}

func NewIndividualRepository(db *gorm.DB) *individualRepository {
	return &individualRepository{db: db}
}

func (r *individualRepository) Create(ctx context.Context, individual *domain.Individual) error {
	return r.db.WithContext(ctx).Create(individual).Error
}

func (r *individualRepository) ListByType(ctx context.Context, ownerID uuid.UUID, animalType domain.Species) ([]*domain.Individual, error) {
	var individuals []*domain.Individual
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND animal_type = ?", ownerID, animalType).
		Order("created_at DESC").
		Find(&individuals).Error
	if err != nil {
		return nil, err
	}
	return individuals, nil
}

func (r *individualRepository) GetByID(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, id uuid.UUID) (*domain.Individual, error) {
	var individual domain.Individual
	err := r.db.WithContext(ctx).
		First(&individual, "id = ? AND owner_id = ? AND animal_type = ?", id, ownerID, animalType).Error
	if err != nil {
		return nil, err
	}
	return &individual, nil
}

func (r *individualRepository) GetByName(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, name string) (*domain.Individual, error) {
	var individual domain.Individual
	err := r.db.WithContext(ctx).
		First(&individual, "owner_id = ? AND animal_type = ? AND name = ?", ownerID, animalType, name).Error
	if err != nil {
		return nil, err
	}
	return &individual, nil
}

func (r *individualRepository) Update(ctx context.Context, individual *domain.Individual) error {
	return r.db.WithContext(ctx).Save(individual).Error
}

func (r *individualRepository) Delete(ctx context.Context, ownerID uuid.UUID, animalType domain.Species, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&domain.Individual{}, "id = ? AND owner_id = ? AND animal_type = ?", id, ownerID, animalType)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *individualRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Individual{}, "owner_id = ?", ownerID).Error
}
