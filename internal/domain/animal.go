package domain

import (
	"time"

	"github.com/google/uuid"
)

// Animal is a species-level herd entry, e.g. "Bella, cow, 3 years".
// OwnerID is stamped from the authenticated caller and never accepted
// from client input.
type Animal struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID   uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
