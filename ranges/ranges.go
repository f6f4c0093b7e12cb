// Package ranges implements the conversion between spreadsheet column
// letters (A, B, ..., AA, AB, ...) and 1-indexed column numbers, and builds
// the A1 range addresses used for row, column and paginated reads/writes.
package ranges

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by every error returned for input that is
// rejected before anything is sent upstream.
var ErrInvalidArgument = errors.New("invalid argument")

// LetterToIndex converts a column letter (e.g. 'B', 'AA') to a 1-indexed
// column number. Input is case-insensitive; anything other than letters
// A-Z is rejected.
func LetterToIndex(letter string) (int, error) {
	column := strings.ToUpper(strings.TrimSpace(letter))
	if column == "" {
		return 0, fmt.Errorf("%w: empty column letter", ErrInvalidArgument)
	}

	index := 0
	for _, ch := range column {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: invalid column letter '%s'", ErrInvalidArgument, letter)
		}

		index = index*26 + int(ch-'A') + 1
	}

	return index, nil
}

// IndexToLetter converts a 1-indexed column number to its column letter.
func IndexToLetter(index int) (string, error) {
	if index < 1 {
		return "", fmt.Errorf("%w: invalid column index %d", ErrInvalidArgument, index)
	}

	letter := []byte{}
	for index > 0 {
		remainder := (index - 1) % 26
		letter = append(letter, byte('A'+remainder))
		index = (index - 1) / 26
	}

	// ... digits were appended least significant first
	for i, j := 0, len(letter)-1; i < j; i, j = i+1, j-1 {
		letter[i], letter[j] = letter[j], letter[i]
	}

	return string(letter), nil
}

// RowRange builds the range address for a row overwrite anchored at column
// A, e.g. RowRange(5, 3) is "A5:C5".
func RowRange(row int, count int) (string, error) {
	if row < 1 {
		return "", fmt.Errorf("%w: invalid row number %d", ErrInvalidArgument, row)
	}

	if count < 1 {
		return "", fmt.Errorf("%w: no values provided", ErrInvalidArgument)
	}

	end, err := IndexToLetter(count)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("A%d:%s%d", row, end, row), nil
}

// ColumnRange builds the range address for a column overwrite anchored at
// row 1, e.g. ColumnRange("b", 3) is "B1:B3".
func ColumnRange(letter string, count int) (string, error) {
	if _, err := LetterToIndex(letter); err != nil {
		return "", err
	}

	if count < 1 {
		return "", fmt.Errorf("%w: no values provided", ErrInvalidArgument)
	}

	column := strings.ToUpper(strings.TrimSpace(letter))

	return fmt.Sprintf("%s1:%s%d", column, column, count), nil
}

// Pagination builds the range address for a paginated worksheet read. The
// column span is capped at 'Z' (26 columns) - known limitation. Start/end
// rows are passed through as-is: the upstream service is authoritative on
// validity.
func Pagination(startRow int, endRow int) string {
	return fmt.Sprintf("A%d:Z%d", startRow, endRow)
}
