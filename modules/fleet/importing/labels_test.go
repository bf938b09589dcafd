package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/vehicle"
)

func TestNormalizePlate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ABC-1234", "ABC1234"},
		{"abc 1234", "ABC1234"},
		{"  a_b.c\t1234 ", "ABC1234"},
		{"أ ب ج 1234", "أبج1234"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePlate(tc.in), "plate %q", tc.in)
	}
}

func TestNormalizeBrand(t *testing.T) {
	assert.Equal(t, "Toyota", NormalizeBrand("toyota"))
	assert.Equal(t, "Toyota", NormalizeBrand("تويوتا"))
	assert.Equal(t, "Mercedes-Benz", NormalizeBrand("مرسيدس"))
	assert.Equal(t, "GMC", NormalizeBrand("جي ام سي"))
	assert.Equal(t, "Tesla", NormalizeBrand("  Tesla  "), "unknown brands pass through trimmed")
}

func TestStatusFromLabel(t *testing.T) {
	assert.Equal(t, vehicle.StatusAvailable, StatusFromLabel("متاح"))
	assert.Equal(t, vehicle.StatusRented, StatusFromLabel("مؤجرة"))
	assert.Equal(t, vehicle.StatusMaintenance, StatusFromLabel("في الصيانة"))
	assert.Equal(t, vehicle.StatusOutOfService, StatusFromLabel("خارج الخدمة"))
	assert.Equal(t, vehicle.StatusRented, StatusFromLabel(" rented "), "labels are trimmed before lookup")
	assert.Equal(t, vehicle.StatusAvailable, StatusFromLabel("مجهول"), "unknown labels fall back to available")
	assert.Equal(t, vehicle.StatusAvailable, StatusFromLabel(""))
}

func TestDocStatusFromLabel(t *testing.T) {
	assert.Equal(t, vehicle.DocStatusValid, DocStatusFromLabel("ساري"))
	assert.Equal(t, vehicle.DocStatusExpired, DocStatusFromLabel("منتهية"))
	assert.Equal(t, vehicle.DocStatusPending, DocStatusFromLabel("قيد التجديد"))
	assert.Equal(t, vehicle.DocStatusValid, DocStatusFromLabel("غير معروف"), "unknown labels fall back to valid")
}

func TestTemplateHeadersResolve(t *testing.T) {
	seen := make(map[Field]bool)
	for _, h := range TemplateHeaders() {
		field, ok := columnLabels[h]
		assert.True(t, ok, "template header %q must resolve to a field", h)
		assert.False(t, seen[field], "field %q mapped twice", field)
		seen[field] = true
	}
	assert.Len(t, seen, 21)
}
