package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_ExcelSerial(t *testing.T) {
	// 45657 is 2024-12-31 in the 1900 date system.
	date, ok := ParseDate(Number(45657))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), date.UTC())
}

func TestParseDate_TextLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-06-30", time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"30/06/2026", time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"3/6/2026", time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)},
		{"30-06-2026", time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"2026/06/30", time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"30.06.2026", time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"  2026-06-30  ", time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			date, ok := ParseDate(Text(tc.in))
			require.True(t, ok)
			assert.Equal(t, tc.want, date.UTC())
		})
	}
}

func TestParseDate_Rejects(t *testing.T) {
	for _, cell := range []CellValue{
		Empty(),
		Text(""),
		Text("soon"),
		Text("قريباً"),
		Text("31/31/2026"),
		Number(0),
		Number(-5),
	} {
		_, ok := ParseDate(cell)
		assert.False(t, ok, "cell %q should not parse", cell.String())
	}
}
