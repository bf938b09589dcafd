package importing

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptyWorkbook = errors.New("workbook has no sheets")
	ErrNoHeaderRow   = errors.New("workbook has no header row")
)

// ParseWorkbook reads the first sheet of an xlsx workbook into raw rows keyed
// by the header labels. A corrupt or unreadable file fails the whole import
// before any row reaches validation.
func ParseWorkbook(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read rows")
	}
	if len(rows) == 0 {
		return nil, ErrNoHeaderRow
	}

	header := make([]string, len(rows[0]))
	for i, label := range rows[0] {
		header[i] = strings.TrimSpace(label)
	}

	rawRows := make([]RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		raw := make(RawRow, len(header))
		empty := true
		for i, label := range header {
			if label == "" || i >= len(cells) {
				continue
			}
			cell := classifyCell(cells[i])
			if cell.IsEmpty() {
				continue
			}
			raw[label] = cell
			empty = false
		}
		if empty {
			continue
		}
		rawRows = append(rawRows, raw)
	}

	return rawRows, nil
}

// classifyCell sorts a raw cell string into the tagged union. With raw cell
// values enabled, date cells surface as their numeric serials.
func classifyCell(value string) CellValue {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Empty()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(f)
	}
	return Text(trimmed)
}
