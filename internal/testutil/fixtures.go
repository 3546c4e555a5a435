package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	seNumber string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "TestPassword1!",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithSENumber sets the registry number
func (b *UserBuilder) WithSENumber(seNumber string) *UserBuilder {
	b.seNumber = seNumber
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if b.seNumber != "" {
		user.SENumber = &b.seNumber
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AnimalBuilder creates test animals owned by a given user
type AnimalBuilder struct {
	ownerID uuid.UUID
	name    string
	kind    string
	age     int
}

func NewAnimalBuilder(ownerID uuid.UUID) *AnimalBuilder {
	return &AnimalBuilder{
		ownerID: ownerID,
		name:    fmt.Sprintf("animal_%s", uuid.New().String()[:8]),
		kind:    "cow",
		age:     3,
	}
}

func (b *AnimalBuilder) WithName(name string) *AnimalBuilder {
	b.name = name
	return b
}

func (b *AnimalBuilder) WithType(kind string) *AnimalBuilder {
	b.kind = kind
	return b
}

func (b *AnimalBuilder) WithAge(age int) *AnimalBuilder {
	b.age = age
	return b
}

func (b *AnimalBuilder) Build(t *testing.T, db *gorm.DB) *domain.Animal {
	t.Helper()

	animal := &domain.Animal{
		ID:        uuid.New(),
		OwnerID:   b.ownerID,
		Name:      b.name,
		Type:      b.kind,
		Age:       b.age,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(animal).Error; err != nil {
		t.Fatalf("failed to create animal: %v", err)
	}

	return animal
}

// IndividualBuilder creates test individuals owned by a given user
type IndividualBuilder struct {
	ownerID    uuid.UUID
	name       string
	idNumber   string
	animalType domain.Species
}

func NewIndividualBuilder(ownerID uuid.UUID) *IndividualBuilder {
	return &IndividualBuilder{
		ownerID:    ownerID,
		name:       fmt.Sprintf("individual_%s", uuid.New().String()[:8]),
		animalType: domain.SpeciesCattle,
	}
}

func (b *IndividualBuilder) WithName(name string) *IndividualBuilder {
	b.name = name
	return b
}

func (b *IndividualBuilder) WithIDNumber(idNumber string) *IndividualBuilder {
	b.idNumber = idNumber
	return b
}

func (b *IndividualBuilder) WithAnimalType(animalType domain.Species) *IndividualBuilder {
	b.animalType = animalType
	return b
}

func (b *IndividualBuilder) Build(t *testing.T, db *gorm.DB) *domain.Individual {
	t.Helper()

	individual := &domain.Individual{
		ID:         uuid.New(),
		OwnerID:    b.ownerID,
		Name:       b.name,
		IDNumber:   b.idNumber,
		AnimalType: b.animalType,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := db.Create(individual).Error; err != nil {
		t.Fatalf("failed to create individual: %v", err)
	}

	return individual
}
