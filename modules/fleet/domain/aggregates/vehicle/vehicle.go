package vehicle

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the operational state of a vehicle in the rental fleet.
type Status string

const (
	StatusAvailable    Status = "available"
	StatusRented       Status = "rented"
	StatusMaintenance  Status = "maintenance"
	StatusOutOfService Status = "out_of_service"
)

// DocStatus is the state of a periodically renewed document (inspection,
// insurance, registration renewal).
type DocStatus string

const (
	DocStatusValid   DocStatus = "valid"
	DocStatusExpired DocStatus = "expired"
	DocStatusPending DocStatus = "pending"
)

type Vehicle struct {
	id               uint
	plateNumber      string
	brand            string
	model            string
	year             int
	color            string
	vin              string
	chassisNumber    string
	engineNumber     string
	registrationType string
	ownerID          *uint

	status           Status
	inspectionStatus DocStatus
	insuranceStatus  DocStatus
	renewalStatus    DocStatus

	inspectionExpiry   *time.Time
	insuranceExpiry    *time.Time
	registrationExpiry *time.Time

	renewalFees     decimal.Decimal
	dailyRate       decimal.Decimal
	mileage         *int64
	seatingCapacity *int64

	createdAt time.Time
	updatedAt time.Time
}

type Option func(*Vehicle)

func WithID(id uint) Option {
	return func(v *Vehicle) {
		v.id = id
	}
}

func WithYear(year int) Option {
	return func(v *Vehicle) {
		v.year = year
	}
}

func WithColor(color string) Option {
	return func(v *Vehicle) {
		v.color = color
	}
}

func WithVIN(vin string) Option {
	return func(v *Vehicle) {
		v.vin = vin
	}
}

func WithChassisNumber(chassisNumber string) Option {
	return func(v *Vehicle) {
		v.chassisNumber = chassisNumber
	}
}

func WithEngineNumber(engineNumber string) Option {
	return func(v *Vehicle) {
		v.engineNumber = engineNumber
	}
}

func WithRegistrationType(registrationType string) Option {
	return func(v *Vehicle) {
		v.registrationType = registrationType
	}
}

func WithOwnerID(ownerID *uint) Option {
	return func(v *Vehicle) {
		v.ownerID = ownerID
	}
}

func WithStatus(status Status) Option {
	return func(v *Vehicle) {
		v.status = status
	}
}

func WithInspectionStatus(status DocStatus) Option {
	return func(v *Vehicle) {
		v.inspectionStatus = status
	}
}

func WithInsuranceStatus(status DocStatus) Option {
	return func(v *Vehicle) {
		v.insuranceStatus = status
	}
}

func WithRenewalStatus(status DocStatus) Option {
	return func(v *Vehicle) {
		v.renewalStatus = status
	}
}

func WithInspectionExpiry(t *time.Time) Option {
	return func(v *Vehicle) {
		v.inspectionExpiry = t
	}
}

func WithInsuranceExpiry(t *time.Time) Option {
	return func(v *Vehicle) {
		v.insuranceExpiry = t
	}
}

func WithRegistrationExpiry(t *time.Time) Option {
	return func(v *Vehicle) {
		v.registrationExpiry = t
	}
}

func WithRenewalFees(fees decimal.Decimal) Option {
	return func(v *Vehicle) {
		v.renewalFees = fees
	}
}

func WithDailyRate(rate decimal.Decimal) Option {
	return func(v *Vehicle) {
		v.dailyRate = rate
	}
}

func WithMileage(mileage *int64) Option {
	return func(v *Vehicle) {
		v.mileage = mileage
	}
}

func WithSeatingCapacity(capacity *int64) Option {
	return func(v *Vehicle) {
		v.seatingCapacity = capacity
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(v *Vehicle) {
		v.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(v *Vehicle) {
		v.updatedAt = updatedAt
	}
}

func New(plateNumber, brand, model string, opts ...Option) *Vehicle {
	v := &Vehicle{
		plateNumber:      plateNumber,
		brand:            brand,
		model:            model,
		year:             time.Now().Year(),
		status:           StatusAvailable,
		inspectionStatus: DocStatusValid,
		insuranceStatus:  DocStatusValid,
		renewalStatus:    DocStatusValid,
		renewalFees:      decimal.Zero,
		dailyRate:        decimal.Zero,
		createdAt:        time.Now(),
		updatedAt:        time.Now(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Vehicle) ID() uint {
	return v.id
}

func (v *Vehicle) PlateNumber() string {
	return v.plateNumber
}

func (v *Vehicle) Brand() string {
	return v.brand
}

func (v *Vehicle) Model() string {
	return v.model
}

func (v *Vehicle) Year() int {
	return v.year
}

func (v *Vehicle) Color() string {
	return v.color
}

func (v *Vehicle) VIN() string {
	return v.vin
}

func (v *Vehicle) ChassisNumber() string {
	return v.chassisNumber
}

func (v *Vehicle) EngineNumber() string {
	return v.engineNumber
}

func (v *Vehicle) RegistrationType() string {
	return v.registrationType
}

func (v *Vehicle) OwnerID() *uint {
	return v.ownerID
}

func (v *Vehicle) Status() Status {
	return v.status
}

func (v *Vehicle) InspectionStatus() DocStatus {
	return v.inspectionStatus
}

func (v *Vehicle) InsuranceStatus() DocStatus {
	return v.insuranceStatus
}

func (v *Vehicle) RenewalStatus() DocStatus {
	return v.renewalStatus
}

func (v *Vehicle) InspectionExpiry() *time.Time {
	return v.inspectionExpiry
}

func (v *Vehicle) InsuranceExpiry() *time.Time {
	return v.insuranceExpiry
}

func (v *Vehicle) RegistrationExpiry() *time.Time {
	return v.registrationExpiry
}

func (v *Vehicle) RenewalFees() decimal.Decimal {
	return v.renewalFees
}

func (v *Vehicle) DailyRate() decimal.Decimal {
	return v.dailyRate
}

func (v *Vehicle) Mileage() *int64 {
	return v.mileage
}

func (v *Vehicle) SeatingCapacity() *int64 {
	return v.seatingCapacity
}

func (v *Vehicle) CreatedAt() time.Time {
	return v.createdAt
}

func (v *Vehicle) UpdatedAt() time.Time {
	return v.updatedAt
}
