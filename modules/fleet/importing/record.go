package importing

import "github.com/shopspring/decimal"

// Field names the canonical columns of a vehicle import row. Values double as
// the issue field identifiers surfaced to the reviewer.
type Field string

const (
	FieldPlateNumber        Field = "plate_number"
	FieldBrand              Field = "brand"
	FieldModel              Field = "model"
	FieldYear               Field = "year"
	FieldColor              Field = "color"
	FieldVIN                Field = "vin"
	FieldChassisNumber      Field = "chassis_number"
	FieldEngineNumber       Field = "engine_number"
	FieldRegistrationType   Field = "registration_type"
	FieldOwnerName          Field = "owner_name"
	FieldInspectionStatus   Field = "inspection_status"
	FieldInsuranceStatus    Field = "insurance_status"
	FieldRenewalStatus      Field = "renewal_status"
	FieldStatus             Field = "status"
	FieldInspectionExpiry   Field = "inspection_expiry"
	FieldInsuranceExpiry    Field = "insurance_expiry"
	FieldRegistrationExpiry Field = "registration_expiry"
	FieldRenewalFees        Field = "renewal_fees"
	FieldDailyRate          Field = "daily_rate"
	FieldMileage            Field = "mileage"
	FieldSeatingCapacity    Field = "seating_capacity"
)

// Record is the canonical, locale-independent shape of one vehicle row after
// field mapping. A validated Record is never mutated in place: the correction
// step swaps in a replacement and re-validates it.
type Record struct {
	PlateNumber      string
	Brand            string
	Model            string
	Year             int
	Color            string
	VIN              string
	ChassisNumber    string
	EngineNumber     string
	RegistrationType string
	OwnerName        string

	// Enumerated labels stay in the source locale until commit-time mapping.
	InspectionStatus string
	InsuranceStatus  string
	RenewalStatus    string
	Status           string

	// Expiry cells keep their raw form: an Excel serial or a free-form date
	// string, both parsed lazily.
	InspectionExpiry   CellValue
	InsuranceExpiry    CellValue
	RegistrationExpiry CellValue

	RenewalFees     decimal.Decimal
	DailyRate       decimal.Decimal
	Mileage         *int64
	SeatingCapacity *int64
}
