package tabular

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses the first sheet of a workbook using the same cell typing
// as ReadCSV.
func ReadXLSX(r io.Reader) (*Frame, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	header := rows[0]
	f := NewFrame(header)
	for _, record := range rows[1:] {
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
