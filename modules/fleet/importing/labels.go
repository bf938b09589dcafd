package importing

import (
	"strings"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/vehicle"
)

// columnLabels maps spreadsheet header labels to canonical fields. The fleet
// templates use Arabic headers; English and legacy snake_case aliases are
// accepted for files produced by older exports. Many labels map to one field;
// unknown labels are dropped by the mapper.
var columnLabels = map[string]Field{
	// Canonical Arabic template headers.
	"رقم اللوحة":           FieldPlateNumber,
	"الماركة":              FieldBrand,
	"الموديل":              FieldModel,
	"سنة الصنع":            FieldYear,
	"اللون":                FieldColor,
	"رقم VIN":              FieldVIN,
	"رقم الهيكل":           FieldChassisNumber,
	"رقم المحرك":           FieldEngineNumber,
	"نوع التسجيل":          FieldRegistrationType,
	"اسم المالك":           FieldOwnerName,
	"حالة الفحص":           FieldInspectionStatus,
	"حالة التأمين":         FieldInsuranceStatus,
	"حالة التجديد":         FieldRenewalStatus,
	"الحالة":               FieldStatus,
	"تاريخ انتهاء الفحص":   FieldInspectionExpiry,
	"تاريخ انتهاء التأمين": FieldInsuranceExpiry,
	"تاريخ انتهاء التسجيل": FieldRegistrationExpiry,
	"رسوم التجديد":         FieldRenewalFees,
	"السعر اليومي":         FieldDailyRate,
	"العداد":               FieldMileage,
	"عدد المقاعد":          FieldSeatingCapacity,

	// Alternate Arabic spellings seen in the field.
	"العلامة التجارية":       FieldBrand,
	"الطراز":                 FieldModel,
	"السنة":                  FieldYear,
	"الممشى":                 FieldMileage,
	"الإيجار اليومي":         FieldDailyRate,
	"تاريخ انتهاء الاستمارة": FieldRegistrationExpiry,

	// English aliases.
	"Plate Number":        FieldPlateNumber,
	"Plate":               FieldPlateNumber,
	"Brand":               FieldBrand,
	"Make":                FieldBrand,
	"Model":               FieldModel,
	"Year":                FieldYear,
	"Color":               FieldColor,
	"VIN":                 FieldVIN,
	"Chassis Number":      FieldChassisNumber,
	"Engine Number":       FieldEngineNumber,
	"Registration Type":   FieldRegistrationType,
	"Owner Name":          FieldOwnerName,
	"Owner":               FieldOwnerName,
	"Inspection Status":   FieldInspectionStatus,
	"Insurance Status":    FieldInsuranceStatus,
	"Renewal Status":      FieldRenewalStatus,
	"Status":              FieldStatus,
	"Inspection Expiry":   FieldInspectionExpiry,
	"Insurance Expiry":    FieldInsuranceExpiry,
	"Registration Expiry": FieldRegistrationExpiry,
	"Renewal Fees":        FieldRenewalFees,
	"Daily Rate":          FieldDailyRate,
	"Mileage":             FieldMileage,
	"Seating Capacity":    FieldSeatingCapacity,
	"Seats":               FieldSeatingCapacity,

	// Legacy export column ids.
	"plate_number":        FieldPlateNumber,
	"brand":               FieldBrand,
	"model":               FieldModel,
	"year":                FieldYear,
	"color":               FieldColor,
	"vin":                 FieldVIN,
	"chassis_number":      FieldChassisNumber,
	"engine_number":       FieldEngineNumber,
	"registration_type":   FieldRegistrationType,
	"owner_name":          FieldOwnerName,
	"inspection_status":   FieldInspectionStatus,
	"insurance_status":    FieldInsuranceStatus,
	"renewal_status":      FieldRenewalStatus,
	"status":              FieldStatus,
	"inspection_expiry":   FieldInspectionExpiry,
	"insurance_expiry":    FieldInsuranceExpiry,
	"registration_expiry": FieldRegistrationExpiry,
	"renewal_fees":        FieldRenewalFees,
	"daily_rate":          FieldDailyRate,
	"mileage":             FieldMileage,
	"seating_capacity":    FieldSeatingCapacity,
}

// LabelTable maps locale-dependent labels to canonical values with an
// explicit default for labels the table does not know.
type LabelTable[T any] struct {
	entries  map[string]T
	fallback T
}

func NewLabelTable[T any](entries map[string]T, fallback T) LabelTable[T] {
	return LabelTable[T]{entries: entries, fallback: fallback}
}

func (t LabelTable[T]) Lookup(label string) T {
	if v, ok := t.entries[strings.TrimSpace(label)]; ok {
		return v
	}
	return t.fallback
}

var statusLabels = NewLabelTable(map[string]vehicle.Status{
	"متاح":           vehicle.StatusAvailable,
	"متاحة":          vehicle.StatusAvailable,
	"مؤجر":           vehicle.StatusRented,
	"مؤجرة":          vehicle.StatusRented,
	"صيانة":          vehicle.StatusMaintenance,
	"في الصيانة":     vehicle.StatusMaintenance,
	"خارج الخدمة":    vehicle.StatusOutOfService,
	"available":      vehicle.StatusAvailable,
	"rented":         vehicle.StatusRented,
	"maintenance":    vehicle.StatusMaintenance,
	"out_of_service": vehicle.StatusOutOfService,
}, vehicle.StatusAvailable)

var docStatusLabels = NewLabelTable(map[string]vehicle.DocStatus{
	"ساري":        vehicle.DocStatusValid,
	"سارية":       vehicle.DocStatusValid,
	"منتهي":       vehicle.DocStatusExpired,
	"منتهية":      vehicle.DocStatusExpired,
	"قيد التجديد": vehicle.DocStatusPending,
	"valid":       vehicle.DocStatusValid,
	"expired":     vehicle.DocStatusExpired,
	"pending":     vehicle.DocStatusPending,
}, vehicle.DocStatusValid)

// knownBrands canonicalizes brand casing and the common Arabic brand names.
var knownBrands = map[string]string{
	"toyota":        "Toyota",
	"تويوتا":        "Toyota",
	"hyundai":       "Hyundai",
	"هيونداي":       "Hyundai",
	"nissan":        "Nissan",
	"نيسان":         "Nissan",
	"kia":           "Kia",
	"كيا":           "Kia",
	"chevrolet":     "Chevrolet",
	"شيفروليه":      "Chevrolet",
	"ford":          "Ford",
	"فورد":          "Ford",
	"honda":         "Honda",
	"هوندا":         "Honda",
	"mazda":         "Mazda",
	"مازدا":         "Mazda",
	"mitsubishi":    "Mitsubishi",
	"ميتسوبيشي":     "Mitsubishi",
	"lexus":         "Lexus",
	"لكزس":          "Lexus",
	"bmw":           "BMW",
	"gmc":           "GMC",
	"جي ام سي":      "GMC",
	"mercedes":      "Mercedes-Benz",
	"مرسيدس":        "Mercedes-Benz",
	"mercedes-benz": "Mercedes-Benz",
}

// NormalizePlate strips separators and whitespace and upper-cases latin
// characters, so "ا ب ج 1234", "ABC-1234" and "abc 1234" compare equal to
// their stored forms.
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range plate {
		switch r {
		case ' ', '\t', '-', '_', '.':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// NormalizeBrand canonicalizes the brand against the known-brand table,
// falling back to the trimmed input.
func NormalizeBrand(brand string) string {
	trimmed := strings.TrimSpace(brand)
	if canonical, ok := knownBrands[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// StatusFromLabel maps a localized status label to its canonical enum value.
func StatusFromLabel(label string) vehicle.Status {
	return statusLabels.Lookup(label)
}

// DocStatusFromLabel maps a localized document status label to its canonical
// enum value.
func DocStatusFromLabel(label string) vehicle.DocStatus {
	return docStatusLabels.Lookup(label)
}
