package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidCSV is returned when an import file has no usable header.
var ErrInvalidCSV = errors.New("invalid CSV")

var importColumns = []string{"id", "name", "price", "stock"}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}

// ImportProducts adds every row of a CSV file with the columns id, name,
// price and stock (any order, case-insensitive header). Rows that fail are
// reported and skipped; row 1 is the header. A syntax error ends the import
// at that row and is reported like any other row error.
func (s *Service) ImportProducts(r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: missing header: %v", ErrInvalidCSV, err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			return ImportResult{}, fmt.Errorf("%w: missing column %q", ErrInvalidCSV, col)
		}
	}
	// Rows may not have the header's width once the header is known.
	reader.FieldsPerRecord = -1

	result := ImportResult{Errors: []RowError{}}
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// The reader cannot resynchronise after a syntax error, so the
			// rest of the file is abandoned. Rows already added stay added.
			result.Errors = append(result.Errors, RowError{Row: row, Message: fmt.Sprintf("malformed CSV, import stopped: %v", err)})
			break
		}

		if err := s.importRow(record, index); err != nil {
			result.Errors = append(result.Errors, RowError{Row: row, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	s.log.Info().Int("imported", result.Imported).Int("rejected", len(result.Errors)).Msg("products imported")
	return result, nil
}

func (s *Service) importRow(record []string, index map[string]int) error {
	field := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	price, err := decimal.NewFromString(field("price"))
	if err != nil {
		return fmt.Errorf("invalid price %q", field("price"))
	}
	stock, err := strconv.Atoi(field("stock"))
	if err != nil {
		return fmt.Errorf("invalid stock %q", field("stock"))
	}

	_, err = s.AddProduct(field("id"), field("name"), price, stock)
	return err
}
