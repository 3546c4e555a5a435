package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IndividualNote is a dated free-text entry embedded in an Individual.
type IndividualNote struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Individual is a single named animal within one of the tracked species.
type Individual struct {
	ID         uuid.UUID                           `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID    uuid.UUID                           `json:"ownerId" gorm:"type:uuid;not null;index"`
	Name       string                              `json:"name" gorm:"not null"`
	IDNumber   string                              `json:"idNumber,omitempty"`
	AnimalType Species                             `json:"animalType" gorm:"not null;index"`
	Notes      datatypes.JSONSlice[IndividualNote] `json:"notes"`
	CreatedAt  time.Time                           `json:"createdAt"`
	UpdatedAt  time.Time                           `json:"updatedAt"`
}

// AddNote appends a dated note to the embedded notes list.
func (i *Individual) AddNote(content string, at time.Time) {
	i.Notes = append(i.Notes, IndividualNote{Content: content, CreatedAt: at})
}
