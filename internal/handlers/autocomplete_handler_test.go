package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// Sem credencial os autocompletes respondem 200 com lista vazia; os
// widgets do painel não tratam 401.
func TestAutocompleteWithoutCredentialReturnsEmptyList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// os casos de uso nunca são alcançados sem identidade no contexto
	h := NewAutocompleteHandler(nil, nil, nil)

	r := gin.New()
	r.GET("/api/autocomplete/available-slots", h.OpenSlots)
	r.GET("/api/autocomplete/available-dates", h.UpcomingDates)
	r.GET("/api/autocomplete/available-people", h.AvailablePeople)

	paths := []string{
		"/api/autocomplete/available-slots?q=corte",
		"/api/autocomplete/available-dates?q=25/12",
		"/api/autocomplete/available-people?q=maria",
	}

	for _, path := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", path, w.Code)
		}

		var body struct {
			Data  []json.RawMessage `json:"data"`
			Total int               `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: resposta não é o envelope de listagem: %v", path, err)
		}
		if len(body.Data) != 0 || body.Total != 0 {
			t.Errorf("%s: data = %d itens, total = %d, want lista vazia",
				path, len(body.Data), body.Total)
		}
	}
}
