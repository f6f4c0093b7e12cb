package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/twystd/sheetsd/ranges"
)

func (s *Server) getColumn(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")
	column := chi.URLParam(r, "column")

	if _, err := ranges.LetterToIndex(column); err != nil {
		fail(w, err)
		return
	}

	values, err := s.gateway.ReadColumn(r.Context(), spreadsheet, worksheet, column)
	if err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Column string   `json:"column"`
		Values []string `json:"values"`
	}{
		Column: strings.ToUpper(column),
		Values: values,
	})
}

// updateColumn overwrites a contiguous span anchored at row 1 with the
// supplied values. Existing values outside the span are left as-is.
func (s *Server) updateColumn(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")
	column := chi.URLParam(r, "column")

	body := struct {
		Values []string `json:"values"`
	}{}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, fmt.Errorf("invalid request body (%v)", err))
		return
	}

	if len(body.Values) == 0 {
		fail(w, fmt.Errorf("%w: no values provided for the column update", ranges.ErrInvalidArgument))
		return
	}

	area, err := ranges.ColumnRange(column, len(body.Values))
	if err != nil {
		fail(w, err)
		return
	}

	// ... one value per row
	values := make([][]string, len(body.Values))
	for i, v := range body.Values {
		values[i] = []string{v}
	}

	if err := s.gateway.WriteRange(r.Context(), spreadsheet, worksheet, area, values); err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Message string   `json:"message"`
		Values  []string `json:"values"`
	}{
		Message: fmt.Sprintf("Column %s updated.", strings.ToUpper(column)),
		Values:  body.Values,
	})
}

// deleteColumn removes the column entirely, shifting subsequent columns
// left - unlike deleteCell, which only clears content.
func (s *Server) deleteColumn(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")
	column := chi.URLParam(r, "column")

	index, err := ranges.LetterToIndex(column)
	if err != nil {
		fail(w, err)
		return
	}

	if err := s.gateway.DeleteColumn(r.Context(), spreadsheet, worksheet, index); err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Message string `json:"message"`
	}{
		Message: fmt.Sprintf("Column %s deleted.", strings.ToUpper(column)),
	})
}
