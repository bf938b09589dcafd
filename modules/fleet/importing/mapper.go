package importing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MapRow translates one raw spreadsheet row into the canonical record shape.
// Mapping never fails: unknown columns are dropped, unparseable numerics fall
// back to their field defaults, and missing required fields are left empty
// for the validator to flag. Pure function over one row.
func MapRow(raw RawRow) Record {
	rec := Record{
		Year:        time.Now().Year(),
		RenewalFees: decimal.Zero,
		DailyRate:   decimal.Zero,
	}

	for label, cell := range raw {
		field, ok := columnLabels[strings.TrimSpace(label)]
		if !ok {
			continue
		}
		if cell.IsEmpty() {
			continue
		}

		switch field {
		case FieldPlateNumber:
			rec.PlateNumber = strings.TrimSpace(cell.String())
		case FieldBrand:
			rec.Brand = strings.TrimSpace(cell.String())
		case FieldModel:
			rec.Model = strings.TrimSpace(cell.String())
		case FieldYear:
			rec.Year = coerceYear(cell)
		case FieldColor:
			rec.Color = strings.TrimSpace(cell.String())
		case FieldVIN:
			rec.VIN = strings.ToUpper(strings.TrimSpace(cell.String()))
		case FieldChassisNumber:
			rec.ChassisNumber = strings.ToUpper(strings.TrimSpace(cell.String()))
		case FieldEngineNumber:
			rec.EngineNumber = strings.TrimSpace(cell.String())
		case FieldRegistrationType:
			rec.RegistrationType = strings.TrimSpace(cell.String())
		case FieldOwnerName:
			rec.OwnerName = strings.TrimSpace(cell.String())
		case FieldInspectionStatus:
			rec.InspectionStatus = strings.TrimSpace(cell.String())
		case FieldInsuranceStatus:
			rec.InsuranceStatus = strings.TrimSpace(cell.String())
		case FieldRenewalStatus:
			rec.RenewalStatus = strings.TrimSpace(cell.String())
		case FieldStatus:
			rec.Status = strings.TrimSpace(cell.String())
		case FieldInspectionExpiry:
			rec.InspectionExpiry = cell
		case FieldInsuranceExpiry:
			rec.InsuranceExpiry = cell
		case FieldRegistrationExpiry:
			rec.RegistrationExpiry = cell
		case FieldRenewalFees:
			rec.RenewalFees = coerceDecimal(cell)
		case FieldDailyRate:
			rec.DailyRate = coerceDecimal(cell)
		case FieldMileage:
			rec.Mileage = coerceInt(cell)
		case FieldSeatingCapacity:
			rec.SeatingCapacity = coerceInt(cell)
		}
	}

	return rec
}

func coerceYear(cell CellValue) int {
	if f, ok := cell.Float(); ok {
		if y := int(f); y > 0 {
			return y
		}
		return time.Now().Year()
	}
	if y, err := strconv.Atoi(strings.TrimSpace(cell.String())); err == nil && y > 0 {
		return y
	}
	return time.Now().Year()
}

func coerceDecimal(cell CellValue) decimal.Decimal {
	if f, ok := cell.Float(); ok {
		return decimal.NewFromFloat(f)
	}
	if d, err := decimal.NewFromString(strings.TrimSpace(cell.String())); err == nil {
		return d
	}
	return decimal.Zero
}

func coerceInt(cell CellValue) *int64 {
	if f, ok := cell.Float(); ok {
		n := int64(f)
		return &n
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(cell.String()), 10, 64); err == nil {
		return &n
	}
	return nil
}
