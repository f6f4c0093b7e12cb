package rest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"github.com/twystd/sheetsd/ranges"
)

// exportWorksheet downloads the paginated range as a file. Supported
// formats are xlsx (default), csv and tsv.
func (s *Server) exportWorksheet(w http.ResponseWriter, r *http.Request) {
	spreadsheet := chi.URLParam(r, "spreadsheet")
	worksheet := chi.URLParam(r, "worksheet")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	if format != "xlsx" && format != "csv" && format != "tsv" {
		fail(w, fmt.Errorf("%w: invalid export format '%s' - expected xlsx, csv or tsv", ranges.ErrInvalidArgument, format))
		return
	}

	startRow, endRow, err := pagination(r)
	if err != nil {
		fail(w, err)
		return
	}

	data, err := s.gateway.ReadRange(r.Context(), spreadsheet, worksheet, ranges.Pagination(startRow, endRow))
	if err != nil {
		fail(w, err)
		return
	}

	var file []byte
	var mime string

	switch format {
	case "csv":
		mime = "text/csv"
		file, err = exportCSV(data, ',')

	case "tsv":
		mime = "text/tab-separated-values"
		file, err = exportCSV(data, '\t')

	default:
		mime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		file, err = exportXLSX(data)
	}

	if err != nil {
		fail(w, err)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, worksheet, format))
	w.WriteHeader(http.StatusOK)
	w.Write(file)
}

func exportCSV(data [][]string, comma rune) ([]byte, error) {
	var b bytes.Buffer

	out := csv.NewWriter(&b)
	out.Comma = comma

	for _, row := range data {
		if err := out.Write(row); err != nil {
			return nil, err
		}
	}

	out.Flush()

	if err := out.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

func exportXLSX(data [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, row := range data {
		for j, value := range row {
			letter, err := ranges.IndexToLetter(j + 1)
			if err != nil {
				return nil, err
			}

			if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", letter, i+1), value); err != nil {
				return nil, err
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}
