package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/twystd/sheetsd/gateway"
	"github.com/twystd/sheetsd/ranges"
)

const (
	defaultStartRow = 1
	defaultEndRow   = 10
)

func (s *Server) listSpreadsheets(w http.ResponseWriter, r *http.Request) {
	list, err := s.gateway.ListSpreadsheets(r.Context())
	if err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Spreadsheets []gateway.Spreadsheet `json:"spreadsheets"`
	}{
		Spreadsheets: list,
	})
}

func (s *Server) listWorksheets(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")

	list, err := s.gateway.ListWorksheets(r.Context(), spreadsheet)
	if err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Worksheets []gateway.Worksheet `json:"worksheets"`
	}{
		Worksheets: list,
	})
}

func (s *Server) getWorksheetData(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")

	startRow, endRow, err := pagination(r)
	if err != nil {
		fail(w, err)
		return
	}

	area := ranges.Pagination(startRow, endRow)

	data, err := s.gateway.ReadRange(r.Context(), spreadsheet, worksheet, area)
	if err != nil {
		fail(w, err)
		return
	}

	reply(w, struct {
		Worksheet string     `json:"worksheet"`
		Range     string     `json:"range"`
		Data      [][]string `json:"data"`
	}{
		Worksheet: worksheet,
		Range:     area,
		Data:      data,
	})
}

// pagination extracts the start_row/end_row query parameters, defaulting to
// rows 1..10. start_row <= end_row is not enforced - the upstream service
// is authoritative on range validity.
func pagination(r *http.Request) (int, int, error) {
	startRow := defaultStartRow
	endRow := defaultEndRow

	if v := r.URL.Query().Get("start_row"); v != "" {
		row, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid start_row '%s'", ranges.ErrInvalidArgument, v)
		}

		startRow = row
	}

	if v := r.URL.Query().Get("end_row"); v != "" {
		row, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid end_row '%s'", ranges.ErrInvalidArgument, v)
		}

		endRow = row
	}

	return startRow, endRow, nil
}
