package importing

import "strconv"

// CellKind tags the decoded value of one spreadsheet cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// CellValue is the tagged union produced at the parser boundary. Dates may
// arrive either as text or as an Excel date serial, so expiry fields keep the
// cell form until they are parsed.
type CellValue struct {
	kind   CellKind
	text   string
	number float64
}

func Empty() CellValue {
	return CellValue{kind: CellEmpty}
}

func Text(s string) CellValue {
	return CellValue{kind: CellText, text: s}
}

func Number(f float64) CellValue {
	return CellValue{kind: CellNumber, number: f}
}

func (c CellValue) Kind() CellKind {
	return c.kind
}

func (c CellValue) IsEmpty() bool {
	return c.kind == CellEmpty
}

// Float returns the numeric value when the cell holds a number.
func (c CellValue) Float() (float64, bool) {
	if c.kind != CellNumber {
		return 0, false
	}
	return c.number, true
}

// String renders the cell as text. Numbers use the shortest exact form.
func (c CellValue) String() string {
	switch c.kind {
	case CellText:
		return c.text
	case CellNumber:
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	default:
		return ""
	}
}

// RawRow is one spreadsheet row keyed by its column header label.
type RawRow map[string]CellValue
