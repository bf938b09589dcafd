package controllers

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/rentora/modules/fleet/importing"
)

func TestDecodeRowDTO(t *testing.T) {
	body := `{
		"plate_number": "ABC-1234",
		"brand": "Toyota",
		"model": "Camry",
		"year": 2023,
		"insurance_expiry": "2026-06-30",
		"daily_rate": "149.50",
		"mileage": 42000
	}`

	dto, err := decodeRowDTO(strings.NewReader(body))
	require.NoError(t, err)

	rec := dto.toRecord()
	assert.Equal(t, "ABC-1234", rec.PlateNumber)
	assert.Equal(t, 2023, rec.Year)
	assert.True(t, rec.DailyRate.Equal(decimal.RequireFromString("149.50")))
	require.NotNil(t, rec.Mileage)
	assert.Equal(t, int64(42000), *rec.Mileage)

	date, ok := importing.ParseDate(rec.InsuranceExpiry)
	require.True(t, ok)
	assert.Equal(t, 2026, date.Year())
}

func TestDecodeRowDTO_Invalid(t *testing.T) {
	_, err := decodeRowDTO(strings.NewReader("{"))
	require.Error(t, err)
}

func TestRowDTO_TrimsIdentifyingFields(t *testing.T) {
	dto := rowDTO{PlateNumber: "  ABC-1234 ", Brand: " Toyota", Model: "Camry  "}
	rec := dto.toRecord()

	assert.Equal(t, "ABC-1234", rec.PlateNumber)
	assert.Equal(t, "Toyota", rec.Brand)
	assert.Equal(t, "Camry", rec.Model)

	blank := rowDTO{PlateNumber: "   ", Brand: "Toyota", Model: "Camry"}
	rec = blank.toRecord()
	assert.Empty(t, rec.PlateNumber, "a whitespace-only edit maps to an empty plate")
}

func TestRowDTO_EmptyFieldsStayAbsent(t *testing.T) {
	dto := rowDTO{PlateNumber: "ABC-1234", Brand: "Toyota", Model: "Camry"}
	rec := dto.toRecord()

	assert.True(t, rec.InsuranceExpiry.IsEmpty())
	assert.True(t, rec.RenewalFees.IsZero())
	assert.Nil(t, rec.Mileage)
}

func TestFromRecordRendersExpiryCells(t *testing.T) {
	rec := importing.Record{
		PlateNumber:     "ABC-1234",
		Brand:           "Toyota",
		Model:           "Camry",
		Year:            2023,
		InsuranceExpiry: importing.Text("2026-06-30"),
		RenewalFees:     decimal.NewFromInt(300),
		DailyRate:       decimal.Zero,
	}

	dto := fromRecord(rec)
	assert.Equal(t, "2026-06-30", dto.InsuranceExpiry)
	assert.Equal(t, "", dto.InspectionExpiry, "absent expiry renders empty")
	assert.Equal(t, "300", dto.RenewalFees)

	// An edited DTO re-enters the pipeline through the same cell form.
	back := dto.toRecord()
	date, ok := importing.ParseDate(back.InsuranceExpiry)
	require.True(t, ok)
	assert.Equal(t, 2026, date.Year())
}
