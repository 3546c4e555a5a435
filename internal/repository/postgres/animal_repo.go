package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/domain"
	"gorm.io/gorm"
)

type animalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) *animalRepository {
	return &animalRepository{db: db}
}

func (r *animalRepository) Create(ctx context.Context, animal *domain.Animal) error {
	return r.db.WithContext(ctx).Create(animal).Error
}

func (r *animalRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Animal, error) {
	var animals []*domain.Animal
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Animal, error) {
	var animal domain.Animal
	err := r.db.WithContext(ctx).First(&animal, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) Update(ctx context.Context, animal *domain.Animal) error {
	return r.db.WithContext(ctx).Save(animal).Error
}

func (r *animalRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Animal{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *animalRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Animal{}, "owner_id = ?", ownerID).Error
}
