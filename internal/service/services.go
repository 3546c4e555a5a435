package service

import (
	"github.com/mkarlsson/farmtrack/internal/config"
	"github.com/mkarlsson/farmtrack/internal/repository"
)

type Services struct {
	Auth       *AuthService
	Animal     *AnimalService
	Individual *IndividualService
	Note       *NoteService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos, cfg),
		Animal:     NewAnimalService(repos.Animal),
		Individual: NewIndividualService(repos.Individual),
		Note:       NewNoteService(repos.Note),
	}
}
