package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/twystd/sheetsd/ranges"
)

func (s *Server) getRow(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")

	row, err := rowNumber(r)
	if err != nil {
		fail(w, err)
		return
	}

	values, err := s.gateway.ReadRow(r.Context(), spreadsheet, worksheet, row)
	if err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Row    int      `json:"row"`
		Values []string `json:"values"`
	}{
		Row:    row,
		Values: values,
	})
}

// updateRow overwrites a contiguous span anchored at column A with the
// supplied values. Existing values outside the span are left as-is.
func (s *Server) updateRow(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")

	row, err := rowNumber(r)
	if err != nil {
		fail(w, err)
		return
	}

	body := struct {
		Values []string `json:"values"`
	}{}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, fmt.Errorf("invalid request body (%v)", err))
		return
	}

	if len(body.Values) == 0 {
		fail(w, fmt.Errorf("%w: no values provided for the row update", ranges.ErrInvalidArgument))
		return
	}

	area, err := ranges.RowRange(row, len(body.Values))
	if err != nil {
		fail(w, err)
		return
	}

	if err := s.gateway.WriteRange(r.Context(), spreadsheet, worksheet, area, [][]string{body.Values}); err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Message string   `json:"message"`
		Values  []string `json:"values"`
	}{
		Message: fmt.Sprintf("Row %d updated.", row),
		Values:  body.Values,
	})
}

// deleteRow removes the row entirely, shifting subsequent rows up - unlike
// deleteCell, which only clears content.
func (s *Server) deleteRow(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")

	row, err := rowNumber(r)
	if err != nil {
		fail(w, err)
		return
	}

	if err := s.gateway.DeleteRow(r.Context(), spreadsheet, worksheet, row); err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Message string `json:"message"`
	}{
		Message: fmt.Sprintf("Row %d deleted.", row),
	})
}

func rowNumber(r *http.Request) (int, error) {
	v := chi.URLParam(r, "row")

	row, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid row number '%s'", ranges.ErrInvalidArgument, v)
	}

	return row, nil
}
