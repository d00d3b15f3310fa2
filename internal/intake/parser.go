// Package intake parses offense batches exported by field ticketing
// devices into case submissions. Exports are semicolon-separated CSV in
// whichever encoding the device firmware uses; rows before the header
// (device banners, export timestamps) are skipped.
package intake

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/casefine/internal/encoding"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
	"github.com/MrJamesThe3rd/casefine/internal/registry"
)

// Required header columns, as written by the devices. The evidence column
// is optional.
var requiredCols = []string{
	"full_name", "date_of_birth", "address", "location", "offense_date", "offense_type",
}

const evidenceCol = "evidence"

const dateLayout = "2006-01-02"

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a device export and returns one submission per data row.
// Rows with an unknown offense type or unparseable dates fail the batch:
// a half-imported batch is worse than a rejected one.
func (p *Parser) Parse(r io.Reader) ([]registry.Submission, error) {
	utf8r, err := enc.DecodeReader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no header row found: expected columns %s", strings.Join(requiredCols, ", "))
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their position in a row.
type colIndex map[string]int

// findHeader scans for the first row carrying all required columns.
func findHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		if hasRequired(cols) {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func hasRequired(cols colIndex) bool {
	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(cols colIndex, rows [][]string, headerRowNum int) ([]registry.Submission, error) {
	var subs []registry.Submission

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, past the header

		if blankRow(row) {
			continue
		}

		name := cell(row, cols["full_name"])
		if name == "" {
			return nil, fmt.Errorf("row %d: missing full_name", rowNum)
		}

		dob, err := time.Parse(dateLayout, cell(row, cols["date_of_birth"]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date_of_birth: %w", rowNum, err)
		}

		date, err := time.Parse(dateLayout, cell(row, cols["offense_date"]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad offense_date: %w", rowNum, err)
		}

		t := offense.Type(strings.ToLower(cell(row, cols["offense_type"])))
		if !t.IsValid() {
			return nil, fmt.Errorf("row %d: unknown offense_type %q", rowNum, t)
		}

		sub := registry.Submission{
			FullName:    name,
			DateOfBirth: dob,
			Address:     cell(row, cols["address"]),
			Location:    cell(row, cols["location"]),
			Date:        date,
			Type:        t,
		}

		if idx, ok := cols[evidenceCol]; ok {
			sub.EvidenceNote = cell(row, idx)
		}

		subs = append(subs, sub)
	}

	return subs, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
