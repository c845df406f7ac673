package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses a headed CSV stream into a frame. Numeric-looking cells
// become numbers, empty cells are missing, everything else is categorical.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	f := NewFrame(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		row := make([]Value, len(header))
		for i := range header {
			if i < len(record) {
				row[i] = parseCell(record[i])
			}
		}
		f.AppendRow(row)
	}

	return f, nil
}

func parseCell(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Num(n)
	}
	return Str(s)
}
