// Package gateway wraps the remote spreadsheet service. The Gateway
// interface is the capability set consumed by the REST handlers and keeps
// the Google Sheets [][]interface{} value representation out of the rest of
// the codebase.
package gateway

import (
	"context"
	"fmt"
	"strings"
)

type Spreadsheet struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}

type Worksheet struct {
	Title string `json:"title"`
	ID    int64  `json:"id"`
	Rows  int64  `json:"rows"`
	Cols  int64  `json:"cols"`
}

// Gateway is the open/list/read/write/delete capability set over the remote
// spreadsheet service. Every method issues a single upstream operation - no
// retries, no batching.
type Gateway interface {
	// ListSpreadsheets retrieves the spreadsheets accessible to the
	// authenticated account.
	ListSpreadsheets(ctx context.Context) ([]Spreadsheet, error)

	// ListWorksheets retrieves the worksheets (tabs) of a spreadsheet.
	ListWorksheets(ctx context.Context, spreadsheet string) ([]Worksheet, error)

	// ReadRange retrieves the values in a range e.g. 'A1:Z10'.
	ReadRange(ctx context.Context, spreadsheet, worksheet, area string) ([][]string, error)

	// ReadCell retrieves the value of a single cell e.g. 'B14'. A blank or
	// out of range cell reads as the empty string.
	ReadCell(ctx context.Context, spreadsheet, worksheet, cell string) (string, error)

	// ReadRow retrieves all values in a row.
	ReadRow(ctx context.Context, spreadsheet, worksheet string, row int) ([]string, error)

	// ReadColumn retrieves all values in a column.
	ReadColumn(ctx context.Context, spreadsheet, worksheet, column string) ([]string, error)

	// WriteCell sets the value of a single cell. Writing the empty string
	// clears the cell content without touching the sheet structure.
	WriteCell(ctx context.Context, spreadsheet, worksheet, cell, value string) error

	// WriteRange overwrites a range with a rectangular list of values.
	WriteRange(ctx context.Context, spreadsheet, worksheet, area string, values [][]string) error

	// DeleteRow removes a row from the sheet, shifting subsequent rows up.
	DeleteRow(ctx context.Context, spreadsheet, worksheet string, row int) error

	// DeleteColumn removes a column (by 1-indexed column number) from the
	// sheet, shifting subsequent columns left.
	DeleteColumn(ctx context.Context, spreadsheet, worksheet string, column int) error
}

// a1 prefixes a range address with the quoted worksheet title, e.g.
// a1("My Sheet", "A1:Z10") is "'My Sheet'!A1:Z10". Embedded quotes are
// doubled per A1 notation.
func a1(worksheet, area string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(worksheet, "'", "''"), area)
}
