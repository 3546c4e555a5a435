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

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

type CreateNoteRequest struct {
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Species      string     `json:"species"`
	IndividualID *uuid.UUID `json:"individualId"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *NoteHandler) ListBySpecies(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	species, err := domain.ParseSpecies(chi.URLParam(r, "species"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown species")
		return
	}

	notes, err := h.noteService.ListBySpecies(r.Context(), userID, species)
	if err != nil {
		log.Printf("ERROR [note.ListBySpecies] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) ListByIndividual(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	individualID, err := uuid.Parse(chi.URLParam(r, "individualId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid individual id")
		return
	}

	notes, err := h.noteService.ListByIndividual(r.Context(), userID, individualID)
	if err != nil {
		log.Printf("ERROR [note.ListByIndividual] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	target, err := domain.ParseNoteTarget(req.Species, req.IndividualID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSpecies) {
			writeError(w, http.StatusBadRequest, "Unknown species")
			return
		}
		writeError(w, http.StatusBadRequest, "Either species or individual must be given")
		return
	}

	note, err := h.noteService.Create(r.Context(), userID, req.Title, req.Content, target)
	if err != nil {
		if errors.Is(err, service.ErrNoteFieldsEmpty) {
			writeError(w, http.StatusBadRequest, "Title and content are required")
			return
		}
		log.Printf("ERROR [note.Create] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.noteService.Update(r.Context(), userID, id, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoteNotFound):
			writeError(w, http.StatusNotFound, "Note not found")
		case errors.Is(err, service.ErrNoteFieldsEmpty):
			writeError(w, http.StatusBadRequest, "Title and content are required")
		default:
			log.Printf("ERROR [note.Update] %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	if err := h.noteService.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			writeError(w, http.StatusNotFound, "Note not found")
			return
		}
		log.Printf("ERROR [note.Delete] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}
