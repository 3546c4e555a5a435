package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/api/middleware"
	"github.com/mkarlsson/farmtrack/internal/domain"
	"github.com/mkarlsson/farmtrack/internal/service"
)

type IndividualHandler struct {
	individualService *service.IndividualService
}

func NewIndividualHandler(individualService *service.IndividualService) *IndividualHandler {
	return &IndividualHandler{individualService: individualService}
}

type IndividualRequest struct {
	Name       string `json:"name"`
	IDNumber   string `json:"idNumber"`
	AnimalType string `json:"animalType"`
}

type AddIndividualNoteRequest struct {
	Content string `json:"content"`
}

func (h *IndividualHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animalType, err := domain.ParseSpecies(chi.URLParam(r, "animalType"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown animal type")
		return
	}

	individuals, err := h.individualService.ListByType(r.Context(), userID, animalType)
	if err != nil {
		log.Printf("ERROR [individual.ListByType] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, individuals)
}

func (h *IndividualHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animalType, err := domain.ParseSpecies(chi.URLParam(r, "animalType"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown animal type")
		return
	}

	individual, err := h.individualService.GetByName(r.Context(), userID, animalType, chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, service.ErrIndividualNotFound) {
			writeError(w, http.StatusNotFound, "Individual not found")
			return
		}
		log.Printf("ERROR [individual.GetByName] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, individual)
}

func (h *IndividualHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req IndividualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.AnimalType == "" {
		writeError(w, http.StatusBadRequest, "Name and animal type are required")
		return
	}

	individual, err := h.individualService.Create(r.Context(), userID, service.IndividualInput{
		Name:       req.Name,
		IDNumber:   req.IDNumber,
		AnimalType: domain.Species(req.AnimalType),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSpecies) {
			writeError(w, http.StatusBadRequest, "Unknown animal type")
			return
		}
		log.Printf("ERROR [individual.Create] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, individual)
}

// AddNote appends a note to the individual's embedded notes list and
// returns the updated individual.
func (h *IndividualHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animalType, err := domain.ParseSpecies(chi.URLParam(r, "animalType"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown animal type")
		return
	}

	var req AddIndividualNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	individual, err := h.individualService.AddNote(r.Context(), userID, animalType, chi.URLParam(r, "name"), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrIndividualNotFound) {
			writeError(w, http.StatusNotFound, "Individual not found")
			return
		}
		log.Printf("ERROR [individual.AddNote] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, individual)
}

func (h *IndividualHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animalType, err := domain.ParseSpecies(chi.URLParam(r, "animalType"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown animal type")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Individual not found")
		return
	}

	var req IndividualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	individual, err := h.individualService.Update(r.Context(), userID, animalType, id, service.IndividualInput{
		Name:       req.Name,
		IDNumber:   req.IDNumber,
		AnimalType: domain.Species(req.AnimalType),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIndividualNotFound):
			writeError(w, http.StatusNotFound, "Individual not found")
		case errors.Is(err, domain.ErrInvalidSpecies):
			writeError(w, http.StatusBadRequest, "Unknown animal type")
		default:
			log.Printf("ERROR [individual.Update] %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, individual)
}

func (h *IndividualHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animalType, err := domain.ParseSpecies(chi.URLParam(r, "animalType"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown animal type")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Individual not found")
		return
	}

	if err := h.individualService.Delete(r.Context(), userID, animalType, id); err != nil {
		if errors.Is(err, service.ErrIndividualNotFound) {
			writeError(w, http.StatusNotFound, "Individual not found")
			return
		}
		log.Printf("ERROR [individual.Delete] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Individual deleted"})
}
