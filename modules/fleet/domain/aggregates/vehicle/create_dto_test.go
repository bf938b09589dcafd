package vehicle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDTO_Ok(t *testing.T) {
	dto := &CreateDTO{
		PlateNumber: "  ABC-1234  ",
		Brand:       "Toyota",
		Model:       "Camry",
		Year:        2023,
		VIN:         "jtnbe46k473031234",
		DailyRate:   "150",
	}

	fieldErrors, ok := dto.Ok()
	require.True(t, ok)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, "ABC-1234", dto.PlateNumber)
	assert.Equal(t, "JTNBE46K473031234", dto.VIN)
}

func TestCreateDTO_MissingRequired(t *testing.T) {
	dto := &CreateDTO{Brand: "Toyota"}

	fieldErrors, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "required", fieldErrors["PlateNumber"])
	assert.Equal(t, "required", fieldErrors["Model"])
	assert.NotContains(t, fieldErrors, "Brand")
}

func TestCreateDTO_YearTooOld(t *testing.T) {
	dto := &CreateDTO{
		PlateNumber: "ABC-1234",
		Brand:       "Toyota",
		Model:       "Camry",
		Year:        1900,
	}

	fieldErrors, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "gte", fieldErrors["Year"])
}

func TestCreateDTO_ToEntity(t *testing.T) {
	mileage := int64(42000)
	dto := &CreateDTO{
		PlateNumber: "ABC-1234",
		Brand:       "Toyota",
		Model:       "Camry",
		Year:        2023,
		Status:      string(StatusRented),
		DailyRate:   "149.50",
		Mileage:     &mileage,
	}

	entity := dto.ToEntity()
	assert.Equal(t, "ABC-1234", entity.PlateNumber())
	assert.Equal(t, 2023, entity.Year())
	assert.Equal(t, StatusRented, entity.Status())
	assert.True(t, entity.DailyRate().Equal(decimal.RequireFromString("149.50")))
	require.NotNil(t, entity.Mileage())
	assert.Equal(t, int64(42000), *entity.Mileage())
}

func TestNew_Defaults(t *testing.T) {
	v := New("ABC-1234", "Toyota", "Camry")
	assert.Equal(t, time.Now().Year(), v.Year())
	assert.Equal(t, StatusAvailable, v.Status())
	assert.Nil(t, v.OwnerID())
	assert.True(t, v.DailyRate().IsZero())
}
