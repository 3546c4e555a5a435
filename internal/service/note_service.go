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

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrNoteFieldsEmpty = errors.New("title and content are required")
)

type NoteService struct {
	noteRepo repository.NoteRepository
}

func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

func (s *NoteService) ListBySpecies(ctx context.Context, ownerID uuid.UUID, species domain.Species) ([]*domain.Note, error) {
	return s.noteRepo.ListBySpecies(ctx, ownerID, species)
}

func (s *NoteService) ListByIndividual(ctx context.Context, ownerID, individualID uuid.UUID) ([]*domain.Note, error) {
	return s.noteRepo.ListByIndividual(ctx, ownerID, individualID)
}

func (s *NoteService) Create(ctx context.Context, ownerID uuid.UUID, title, content string, target domain.NoteTarget) (*domain.Note, error) {
	if title == "" || content == "" {
		return nil, ErrNoteFieldsEmpty
	}

	note, err := domain.NewNote(ownerID, title, content, target)
	if err != nil {
		return nil, err
	}
	note.ID = uuid.New()
	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update changes title and content only; the target set at creation is
// immutable.
func (s *NoteService) Update(ctx context.Context, ownerID, id uuid.UUID, title, content string) (*domain.Note, error) {
	if title == "" || content == "" {
		return nil, ErrNoteFieldsEmpty
	}

	note, err := s.noteRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	note.Title = title
	note.Content = content
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	err := s.noteRepo.Delete(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoteNotFound
	}
	return err
}
