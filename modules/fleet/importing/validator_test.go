package importing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlateChecker records every lookup so tests can assert the duplicate
// check batches into a single query.
type fakePlateChecker struct {
	existing map[string]struct{}
	calls    [][]string
	err      error
}

func (f *fakePlateChecker) ExistingPlates(_ context.Context, plateNumbers []string) (map[string]struct{}, error) {
	f.calls = append(f.calls, plateNumbers)
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]struct{})
	for _, p := range plateNumbers {
		if _, ok := f.existing[p]; ok {
			out[p] = struct{}{}
		}
	}
	return out, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestValidator_MissingRequiredFieldBlocks(t *testing.T) {
	checker := &fakePlateChecker{}
	v := NewValidator(checker)

	records := []Record{
		{PlateNumber: "", Brand: "Toyota", Model: "Camry", Year: 2023},
	}

	issues, err := v.Validate(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, issues[0], 1)
	issue := issues[0][0]
	assert.Equal(t, FieldPlateNumber, issue.Field)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.True(t, issues.Blocked())
	assert.True(t, issues.RowBlocked(0))
}

func TestValidator_WhitespaceRequiredFieldBlocks(t *testing.T) {
	v := NewValidator(&fakePlateChecker{})

	records := []Record{
		{PlateNumber: "   ", Brand: "Toyota", Model: "Camry"},
		{PlateNumber: "ABC-1234", Brand: "\t", Model: "Camry"},
	}

	issues, err := v.Validate(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, issues[0], 1)
	assert.Equal(t, FieldPlateNumber, issues[0][0].Field)
	assert.Equal(t, SeverityError, issues[0][0].Severity)
	require.Len(t, issues[1], 1)
	assert.Equal(t, FieldBrand, issues[1][0].Field)
	assert.True(t, issues.Blocked(), "whitespace-only values count as missing")
}

func TestValidator_AllRequiredMissing(t *testing.T) {
	v := NewValidator(&fakePlateChecker{})

	issues, err := v.Validate(context.Background(), []Record{{}})
	require.NoError(t, err)

	require.Len(t, issues[0], 3)
	fields := []Field{issues[0][0].Field, issues[0][1].Field, issues[0][2].Field}
	assert.Equal(t, []Field{FieldPlateNumber, FieldBrand, FieldModel}, fields)
}

func TestValidator_ExpiringSoonWarnsWithoutBlocking(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	v := NewValidator(&fakePlateChecker{},
		WithExpiryWindow(30),
		WithClock(fixedClock(now)),
	)

	records := []Record{{
		PlateNumber:     "ABC1234",
		Brand:           "Toyota",
		Model:           "Camry",
		InsuranceExpiry: Text(now.AddDate(0, 0, 10).Format("2006-01-02")),
	}}

	issues, err := v.Validate(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, issues[0], 1)
	issue := issues[0][0]
	assert.Equal(t, FieldInsuranceExpiry, issue.Field)
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Contains(t, issue.Message, "expiring within 30 days")
	assert.False(t, issues.Blocked())
}

func TestValidator_ExpiredDateWarns(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	v := NewValidator(&fakePlateChecker{}, WithClock(fixedClock(now)))

	records := []Record{{
		PlateNumber:      "ABC1234",
		Brand:            "Toyota",
		Model:            "Camry",
		InspectionExpiry: Text("2025-12-31"),
	}}

	issues, err := v.Validate(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, issues[0], 1)
	assert.Contains(t, issues[0][0].Message, "has expired")
	assert.Equal(t, SeverityWarning, issues[0][0].Severity)
	assert.False(t, issues.Blocked())
}

func TestValidator_FarFutureExpiryClean(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	v := NewValidator(&fakePlateChecker{}, WithClock(fixedClock(now)))

	records := []Record{{
		PlateNumber:     "ABC1234",
		Brand:           "Toyota",
		Model:           "Camry",
		InsuranceExpiry: Text("2027-06-30"),
	}}

	issues, err := v.Validate(context.Background(), records)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidator_UnparseableExpiryIgnored(t *testing.T) {
	v := NewValidator(&fakePlateChecker{})

	records := []Record{{
		PlateNumber:     "ABC1234",
		Brand:           "Toyota",
		Model:           "Camry",
		InsuranceExpiry: Text("قريباً"),
	}}

	issues, err := v.Validate(context.Background(), records)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidator_DuplicatePlateWarns(t *testing.T) {
	checker := &fakePlateChecker{existing: map[string]struct{}{"ABC1234": {}}}
	v := NewValidator(checker)

	records := []Record{{
		PlateNumber: "abc-1234",
		Brand:       "Toyota",
		Model:       "Camry",
	}}

	issues, err := v.Validate(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, issues[0], 1)
	assert.Equal(t, FieldPlateNumber, issues[0][0].Field)
	assert.Equal(t, SeverityWarning, issues[0][0].Severity)
	assert.False(t, issues.Blocked(), "an existing plate warns but never blocks")
}

func TestValidator_BatchesDuplicateLookup(t *testing.T) {
	checker := &fakePlateChecker{}
	v := NewValidator(checker)

	records := []Record{
		{PlateNumber: "AAA-111", Brand: "Toyota", Model: "Camry"},
		{PlateNumber: "BBB-222", Brand: "Kia", Model: "Rio"},
		{PlateNumber: "aaa 111", Brand: "Toyota", Model: "Camry"},
		{PlateNumber: "", Brand: "Ford", Model: "Focus"},
	}

	_, err := v.Validate(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, checker.calls, 1, "the whole batch resolves in one lookup")
	assert.ElementsMatch(t, []string{"AAA111", "BBB222"}, checker.calls[0],
		"normalized plates are deduplicated and empty plates skipped")
}

func TestValidator_NoPlatesSkipsLookup(t *testing.T) {
	checker := &fakePlateChecker{}
	v := NewValidator(checker)

	_, err := v.Validate(context.Background(), []Record{{Brand: "Toyota", Model: "Camry"}})
	require.NoError(t, err)
	assert.Empty(t, checker.calls)
}

func TestValidator_LookupErrorFailsValidation(t *testing.T) {
	checker := &fakePlateChecker{err: errors.New("connection refused")}
	v := NewValidator(checker)

	_, err := v.Validate(context.Background(), []Record{
		{PlateNumber: "ABC1234", Brand: "Toyota", Model: "Camry"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate plate check failed")
}

func TestValidator_RuleOrderIsStable(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	checker := &fakePlateChecker{existing: map[string]struct{}{"ABC1234": {}}}
	v := NewValidator(checker, WithClock(fixedClock(now)))

	records := []Record{{
		PlateNumber:     "ABC-1234",
		Brand:           "",
		Model:           "Camry",
		InsuranceExpiry: Text("2025-01-01"),
	}}

	issues, err := v.Validate(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, issues[0], 3)
	assert.Equal(t, FieldBrand, issues[0][0].Field)
	assert.Equal(t, FieldInsuranceExpiry, issues[0][1].Field)
	assert.Equal(t, FieldPlateNumber, issues[0][2].Field)
}

func TestValidator_ValidateRowSingleLookup(t *testing.T) {
	checker := &fakePlateChecker{}
	v := NewValidator(checker)

	issues, err := v.ValidateRow(context.Background(), 4, Record{
		PlateNumber: "XYZ-987",
		Brand:       "Kia",
		Model:       "Rio",
	})
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, checker.calls, 1)
	assert.Equal(t, []string{"XYZ987"}, checker.calls[0])
}

func TestValidator_CleanBatchHasNoIssues(t *testing.T) {
	v := NewValidator(&fakePlateChecker{})

	issues, err := v.Validate(context.Background(), []Record{
		{PlateNumber: "AAA-111", Brand: "Toyota", Model: "Camry", Year: 2023},
		{PlateNumber: "BBB-222", Brand: "Kia", Model: "Rio", Year: 2022},
	})
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.False(t, issues.Blocked())
}
