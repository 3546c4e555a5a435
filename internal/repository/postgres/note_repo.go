package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/domain"
	"gorm.io/gorm"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *noteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) ListBySpecies(ctx context.Context, ownerID uuid.UUID, species domain.Species) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND species = ?", ownerID, species).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) ListByIndividual(ctx context.Context, ownerID, individualID uuid.UUID) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND individual_id = ?", ownerID, individualID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error) {
	var note domain.Note
	err := r.db.WithContext(ctx).First(&note, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Note{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *noteRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Note{}, "owner_id = ?", ownerID).Error
}
