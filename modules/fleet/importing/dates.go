package importing

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are the free-form date layouts accepted in expiry columns,
// tried in order: the unambiguous ISO form first, then the day-first forms
// the regional registries print.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
	"02.01.2006",
}

// ParseDate interprets an expiry cell as either an Excel date serial or a
// free-form date string. Absent or unparseable cells report ok=false and are
// treated as "no date" by validation and commit alike.
func ParseDate(cell CellValue) (time.Time, bool) {
	if serial, ok := cell.Float(); ok {
		if serial <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	text := strings.TrimSpace(cell.String())
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
