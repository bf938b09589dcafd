package vehicle

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/rentora/rentora/pkg/constants"
)

type CreateDTO struct {
	PlateNumber      string `json:"plate_number" validate:"required"`
	Brand            string `json:"brand" validate:"required"`
	Model            string `json:"model" validate:"required"`
	Year             int    `json:"year" validate:"omitempty,gte=1950"`
	Color            string `json:"color"`
	VIN              string `json:"vin"`
	ChassisNumber    string `json:"chassis_number"`
	EngineNumber     string `json:"engine_number"`
	RegistrationType string `json:"registration_type"`
	Status           string `json:"status"`
	DailyRate        string `json:"daily_rate" validate:"omitempty,numeric"`
	RenewalFees      string `json:"renewal_fees" validate:"omitempty,numeric"`
	Mileage          *int64 `json:"mileage" validate:"omitempty,gte=0"`
	SeatingCapacity  *int64 `json:"seating_capacity" validate:"omitempty,gt=0"`
}

func (d *CreateDTO) Normalize() {
	d.PlateNumber = strings.TrimSpace(d.PlateNumber)
	d.Brand = strings.TrimSpace(d.Brand)
	d.Model = strings.TrimSpace(d.Model)
	d.Color = strings.TrimSpace(d.Color)
	d.VIN = strings.ToUpper(strings.TrimSpace(d.VIN))
	d.ChassisNumber = strings.ToUpper(strings.TrimSpace(d.ChassisNumber))
	d.EngineNumber = strings.TrimSpace(d.EngineNumber)
	d.RegistrationType = strings.TrimSpace(d.RegistrationType)
	d.Status = strings.TrimSpace(d.Status)
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	fieldErrors := make(map[string]string)
	for _, err := range errs.(validator.ValidationErrors) {
		fieldErrors[err.Field()] = err.Tag()
	}
	return fieldErrors, false
}

func (d *CreateDTO) ToEntity() *Vehicle {
	opts := []Option{}
	if d.Year != 0 {
		opts = append(opts, WithYear(d.Year))
	}
	if d.Color != "" {
		opts = append(opts, WithColor(d.Color))
	}
	if d.VIN != "" {
		opts = append(opts, WithVIN(d.VIN))
	}
	if d.ChassisNumber != "" {
		opts = append(opts, WithChassisNumber(d.ChassisNumber))
	}
	if d.EngineNumber != "" {
		opts = append(opts, WithEngineNumber(d.EngineNumber))
	}
	if d.RegistrationType != "" {
		opts = append(opts, WithRegistrationType(d.RegistrationType))
	}
	if d.Status != "" {
		opts = append(opts, WithStatus(Status(d.Status)))
	}
	if rate, err := decimal.NewFromString(d.DailyRate); err == nil {
		opts = append(opts, WithDailyRate(rate))
	}
	if fees, err := decimal.NewFromString(d.RenewalFees); err == nil {
		opts = append(opts, WithRenewalFees(fees))
	}
	if d.Mileage != nil {
		opts = append(opts, WithMileage(d.Mileage))
	}
	if d.SeatingCapacity != nil {
		opts = append(opts, WithSeatingCapacity(d.SeatingCapacity))
	}
	opts = append(opts, WithCreatedAt(time.Now()), WithUpdatedAt(time.Now()))
	return New(d.PlateNumber, d.Brand, d.Model, opts...)
}
