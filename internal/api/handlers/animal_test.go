package handlers_test

import (
	"net/http"
	"testing"

	"github.com/mkarlsson/farmtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAnimalHandler_AuthRequired(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/animals", "", nil)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Authorization")
	})

	t.Run("malformed token", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/animals", "not-a-jwt", nil)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid token")
	})
}

func TestAnimalHandler_CRUD(t *testing.T) {
	ts := testutil.NewTestServer(t)

	token, userID := ts.Register(t, "farmer@example.com", "StrongPass1!")

	t.Run("create ignores client-supplied owner", func(t *testing.T) {
		resp := ts.Do(t, http.MethodPost, "/animals", token, map[string]interface{}{
			"name":    "Bella",
			"type":    "cow",
			"age":     3,
			"ownerId": "11111111-1111-1111-1111-111111111111",
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusCreated)

		var animal struct {
			OwnerID string `json:"ownerId"`
		}
		testutil.AssertJSONResponse(t, resp, &animal)
		assert.Equal(t, userID, animal.OwnerID)
	})

	t.Run("create requires name and type", func(t *testing.T) {
		resp := ts.Do(t, http.MethodPost, "/animals", token, map[string]interface{}{
			"age": 3,
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})

	t.Run("list update delete round-trip", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/animals", token, nil)
		var animals []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Age  int    `json:"age"`
		}
		testutil.AssertJSONResponse(t, resp, &animals)
		resp.Body.Close()
		assert.Len(t, animals, 1)
		assert.Equal(t, "Bella", animals[0].Name)

		update := ts.Do(t, http.MethodPut, "/animals/"+animals[0].ID, token, map[string]interface{}{
			"name": "Bella",
			"type": "cow",
			"age":  4,
		})
		testutil.AssertStatusCode(t, update, http.StatusOK)
		var updated struct {
			Age int `json:"age"`
		}
		testutil.AssertJSONResponse(t, update, &updated)
		update.Body.Close()
		assert.Equal(t, 4, updated.Age)

		del := ts.Do(t, http.MethodDelete, "/animals/"+animals[0].ID, token, nil)
		testutil.AssertStatusCode(t, del, http.StatusOK)
		del.Body.Close()

		// Deleting again reports absence.
		again := ts.Do(t, http.MethodDelete, "/animals/"+animals[0].ID, token, nil)
		testutil.AssertErrorResponse(t, again, http.StatusNotFound, "not found")
		again.Body.Close()
	})

	t.Run("unparseable id reads as not found", func(t *testing.T) {
		resp := ts.Do(t, http.MethodDelete, "/animals/not-a-uuid", token, nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})
}
