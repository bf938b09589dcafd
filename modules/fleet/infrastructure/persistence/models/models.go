package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Vehicle struct {
	ID                 uint
	PlateNumber        string
	Brand              string
	Model              string
	Year               int
	Color              sql.NullString
	VIN                sql.NullString
	ChassisNumber      sql.NullString
	EngineNumber       sql.NullString
	RegistrationType   sql.NullString
	OwnerID            sql.NullInt64
	Status             string
	InspectionStatus   string
	InsuranceStatus    string
	RenewalStatus      string
	InspectionExpiry   sql.NullTime
	InsuranceExpiry    sql.NullTime
	RegistrationExpiry sql.NullTime
	RenewalFees        decimal.Decimal
	DailyRate          decimal.Decimal
	Mileage            sql.NullInt64
	SeatingCapacity    sql.NullInt64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Owner struct {
	ID        uint
	Name      string
	Phone     sql.NullString
	Email     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}
