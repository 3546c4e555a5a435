package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkarlsson/farmtrack/internal/api/middleware"
	"github.com/mkarlsson/farmtrack/internal/service"
)

type AnimalHandler struct {
	animalService *service.AnimalService
}

func NewAnimalHandler(animalService *service.AnimalService) *AnimalHandler {
	return &AnimalHandler{animalService: animalService}
}

type AnimalRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Age  int    `json:"age"`
}

func (h *AnimalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animals, err := h.animalService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [animal.List] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, animals)
}

func (h *AnimalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Type == "" {
		writeError(w, http.StatusBadRequest, "Name and type are required")
		return
	}

	animal, err := h.animalService.Create(r.Context(), userID, service.AnimalInput{
		Name: req.Name,
		Type: req.Type,
		Age:  req.Age,
	})
	if err != nil {
		log.Printf("ERROR [animal.Create] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, animal)
}

func (h *AnimalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Animal not found")
		return
	}

	var req AnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	animal, err := h.animalService.Update(r.Context(), userID, id, service.AnimalInput{
		Name: req.Name,
		Type: req.Type,
		Age:  req.Age,
	})
	if err != nil {
		if errors.Is(err, service.ErrAnimalNotFound) {
			writeError(w, http.StatusNotFound, "Animal not found")
			return
		}
		log.Printf("ERROR [animal.Update] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, animal)
}

func (h *AnimalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Animal not found")
		return
	}

	if err := h.animalService.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrAnimalNotFound) {
			writeError(w, http.StatusNotFound, "Animal not found")
			return
		}
		log.Printf("ERROR [animal.Delete] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Animal deleted"})
}
