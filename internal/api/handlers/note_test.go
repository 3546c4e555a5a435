package handlers_test

import (
	"net/http"
	"testing"

	"github.com/mkarlsson/farmtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNoteHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, _ := ts.Register(t, "noter@example.com", "StrongPass1!")

	tests := []struct {
		name           string
		request        map[string]interface{}
		expectedStatus int
	}{
		{
			name: "species note",
			request: map[string]interface{}{
				"title":   "Winter feed",
				"content": "Switched the herd over",
				"species": "cattle",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing title",
			request: map[string]interface{}{
				"content": "no title",
				"species": "cattle",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing content",
			request: map[string]interface{}{
				"title":   "no content",
				"species": "cattle",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "neither species nor individual",
			request: map[string]interface{}{
				"title":   "orphan",
				"content": "attached to nothing",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "both species and individual",
			request: map[string]interface{}{
				"title":        "ambiguous",
				"content":      "attached to two things",
				"species":      "cattle",
				"individualId": "11111111-1111-1111-1111-111111111111",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown species",
			request: map[string]interface{}{
				"title":   "bad",
				"content": "bad",
				"species": "dragon",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Do(t, http.MethodPost, "/notes", token, tt.request)
			defer resp.Body.Close()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestNoteHandler_SpeciesListing(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, _ := ts.Register(t, "lister@example.com", "StrongPass1!")
	otherToken, _ := ts.Register(t, "other@example.com", "StrongPass1!")

	create := ts.Do(t, http.MethodPost, "/notes", token, map[string]interface{}{
		"title":   "Vaccination",
		"content": "Due next month",
		"species": "goat",
	})
	testutil.AssertStatusCode(t, create, http.StatusCreated)
	create.Body.Close()

	t.Run("owner sees the note", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/notes/species/goat", token, nil)
		defer resp.Body.Close()

		var notes []struct {
			Title   string `json:"title"`
			Species string `json:"species"`
		}
		testutil.AssertJSONResponse(t, resp, &notes)
		assert.Len(t, notes, 1)
		assert.Equal(t, "Vaccination", notes[0].Title)
		assert.Equal(t, "goat", notes[0].Species)
	})

	t.Run("another account sees nothing", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/notes/species/goat", otherToken, nil)
		defer resp.Body.Close()

		var notes []struct{}
		testutil.AssertJSONResponse(t, resp, &notes)
		assert.Empty(t, notes)
	})

	t.Run("unknown species is rejected", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/notes/species/dragon", token, nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}
