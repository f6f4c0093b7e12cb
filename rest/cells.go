package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) getCell(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")
	cell := chi.URLParam(r, "cell")

	value, err := s.gateway.ReadCell(r.Context(), spreadsheet, worksheet, cell)
	if err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Cell  string `json:"cell"`
		Value string `json:"value"`
	}{
		Cell:  cell,
		Value: value,
	})
}

func (s *Server) updateCell(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")
	cell := chi.URLParam(r, "cell")

	body := struct {
		Value string `json:"value"`
	}{}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, fmt.Errorf("invalid request body (%v)", err))
		return
	}

	if err := s.gateway.WriteCell(r.Context(), spreadsheet, worksheet, cell, body.Value); err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Message string `json:"message"`
	}{
		Message: fmt.Sprintf("Cell %s updated with value '%s'.", cell, body.Value),
	})
}

// deleteCell clears the cell content - it is the same gateway write as
// updateCell, with an empty string. The sheet structure is left untouched.
func (s *Server) deleteCell(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")
	cell := chi.URLParam(r, "cell")

	if err := s.gateway.WriteCell(r.Context(), spreadsheet, worksheet, cell, ""); err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Message string `json:"message"`
	}{
		Message: fmt.Sprintf("Cell %s cleared.", cell),
	})
}
