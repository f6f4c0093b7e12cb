package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

// Google implements Gateway against the Google Sheets and Drive v4/v3 APIs.
// The services are constructed once at process start and shared across all
// requests.
type Google struct {
	sheets *sheets.Service
	drive  *drive.Service
}

func NewGoogle(sheets *sheets.Service, drive *drive.Service) *Google {
	return &Google{
		sheets: sheets,
		drive:  drive,
	}
}

func (g *Google) ListSpreadsheets(ctx context.Context) ([]Spreadsheet, error) {
	list := []Spreadsheet{}
	page := ""

	for {
		call := g.drive.Files.List().
			Q("mimeType='application/vnd.google-apps.spreadsheet' and trashed=false").
			Fields("nextPageToken, files(id, name)").
			Context(ctx)

		if page != "" {
			call = call.PageToken(page)
		}

		response, err := call.Do()
		if err != nil {
			return nil, normalise(err)
		}

		for _, f := range response.Files {
			list = append(list, Spreadsheet{Title: f.Name, ID: f.Id})
		}

		if page = response.NextPageToken; page == "" {
			break
		}
	}

	return list, nil
}

func (g *Google) ListWorksheets(ctx context.Context, spreadsheet string) ([]Worksheet, error) {
	response, err := g.sheets.Spreadsheets.Get(spreadsheet).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, normalise(err)
	}

	list := []Worksheet{}
	for _, sheet := range response.Sheets {
		worksheet := Worksheet{
			Title: sheet.Properties.Title,
			ID:    sheet.Properties.SheetId,
		}

		if grid := sheet.Properties.GridProperties; grid != nil {
			worksheet.Rows = grid.RowCount
			worksheet.Cols = grid.ColumnCount
		}

		list = append(list, worksheet)
	}

	return list, nil
}

func (g *Google) ReadRange(ctx context.Context, spreadsheet, worksheet, area string) ([][]string, error) {
	response, err := g.sheets.Spreadsheets.Values.Get(spreadsheet, a1(worksheet, area)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, normalise(err)
	}

	data := [][]string{}
	for _, row := range response.Values {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprintf("%v", v)
		}

		data = append(data, record)
	}

	return data, nil
}

func (g *Google) ReadCell(ctx context.Context, spreadsheet, worksheet, cell string) (string, error) {
	data, err := g.ReadRange(ctx, spreadsheet, worksheet, cell)
	if err != nil {
		return "", err
	}

	if len(data) == 0 || len(data[0]) == 0 {
		return "", nil
	}

	return data[0][0], nil
}

func (g *Google) ReadRow(ctx context.Context, spreadsheet, worksheet string, row int) ([]string, error) {
	data, err := g.ReadRange(ctx, spreadsheet, worksheet, fmt.Sprintf("%d:%d", row, row))
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return []string{}, nil
	}

	return data[0], nil
}

func (g *Google) ReadColumn(ctx context.Context, spreadsheet, worksheet, column string) ([]string, error) {
	letter := strings.ToUpper(strings.TrimSpace(column))

	data, err := g.ReadRange(ctx, spreadsheet, worksheet, fmt.Sprintf("%s:%s", letter, letter))
	if err != nil {
		return nil, err
	}

	values := []string{}
	for _, row := range data {
		if len(row) > 0 {
			values = append(values, row[0])
		} else {
			values = append(values, "")
		}
	}

	return values, nil
}

func (g *Google) WriteCell(ctx context.Context, spreadsheet, worksheet, cell, value string) error {
	return g.WriteRange(ctx, spreadsheet, worksheet, cell, [][]string{{value}})
}

func (g *Google) WriteRange(ctx context.Context, spreadsheet, worksheet, area string, values [][]string) error {
	rq := sheets.ValueRange{
		Values: [][]interface{}{},
	}

	for _, row := range values {
		record := make([]interface{}, len(row))
		for i, v := range row {
			record[i] = v
		}

		rq.Values = append(rq.Values, record)
	}

	if _, err := g.sheets.Spreadsheets.Values.Update(spreadsheet, a1(worksheet, area), &rq).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return normalise(err)
	}

	return nil
}

func (g *Google) DeleteRow(ctx context.Context, spreadsheet, worksheet string, row int) error {
	return g.deleteDimension(ctx, spreadsheet, worksheet, "ROWS", row)
}

func (g *Google) DeleteColumn(ctx context.Context, spreadsheet, worksheet string, column int) error {
	return g.deleteDimension(ctx, spreadsheet, worksheet, "COLUMNS", column)
}

// deleteDimension removes a single row/column, shifting the remainder. The
// DeleteDimension request addresses sheets by numeric ID and uses 0-indexed
// half-open ranges.
func (g *Google) deleteDimension(ctx context.Context, spreadsheet, worksheet, dimension string, index int) error {
	sheetID, err := g.sheetID(ctx, spreadsheet, worksheet)
	if err != nil {
		return err
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:         sheetID,
						Dimension:       dimension,
						StartIndex:      int64(index - 1),
						EndIndex:        int64(index),
						ForceSendFields: []string{"StartIndex"},
					},
				},
			},
		},
	}

	if _, err := g.sheets.Spreadsheets.BatchUpdate(spreadsheet, &rq).Context(ctx).Do(); err != nil {
		return normalise(err)
	}

	return nil
}

// sheetID resolves a worksheet title to its numeric sheet ID.
func (g *Google) sheetID(ctx context.Context, spreadsheet, worksheet string) (int64, error) {
	response, err := g.sheets.Spreadsheets.Get(spreadsheet).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, normalise(err)
	}

	name := strings.TrimSpace(worksheet)
	for _, sheet := range response.Sheets {
		if strings.EqualFold(strings.TrimSpace(sheet.Properties.Title), name) {
			return sheet.Properties.SheetId, nil
		}
	}

	return 0, fmt.Errorf("unable to identify worksheet '%s'", worksheet)
}

// normalise unwraps googleapi errors to their message so that the REST
// layer surfaces '400: The caller does not have permission' rather than the
// full JSON error body.
func normalise(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Message != "" {
			return fmt.Errorf("%d: %s", gerr.Code, gerr.Message)
		}

		return fmt.Errorf("%d: %s", gerr.Code, http.StatusText(gerr.Code))
	}

	return err
}
