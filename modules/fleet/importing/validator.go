package importing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one classified finding on one row. Row indexes are zero-based
// positions in the preview sequence and join issues back to their records.
type Issue struct {
	Row      int      `json:"row"`
	Field    Field    `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// IssueMap holds per-row issue lists keyed by row index.
type IssueMap map[int][]Issue

// Blocked reports whether any row carries an error-severity issue. Warnings
// never block.
func (m IssueMap) Blocked() bool {
	for _, issues := range m {
		for _, issue := range issues {
			if issue.Severity == SeverityError {
				return true
			}
		}
	}
	return false
}

// RowBlocked reports whether the given row carries an error-severity issue.
func (m IssueMap) RowBlocked(row int) bool {
	for _, issue := range m[row] {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// PlateChecker answers which of the given normalized plate numbers already
// exist in storage, in a single query for the whole set.
type PlateChecker interface {
	ExistingPlates(ctx context.Context, plateNumbers []string) (map[string]struct{}, error)
}

type ValidatorOption func(*Validator)

// WithExpiryWindow sets how close to expiry a document must be before the
// validator flags it as expiring soon.
func WithExpiryWindow(days int) ValidatorOption {
	return func(v *Validator) {
		v.expiryWindowDays = days
	}
}

// WithClock overrides the validator's time source for tests.
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) {
		v.now = now
	}
}

// Validator runs the three per-row rule classes: required fields (blocking),
// expiry warnings, and duplicate-plate detection against stored vehicles.
// Rule order is fixed so issue ordering is reproducible.
type Validator struct {
	plates           PlateChecker
	expiryWindowDays int
	now              func() time.Time
}

func NewValidator(plates PlateChecker, opts ...ValidatorOption) *Validator {
	v := &Validator{
		plates:           plates,
		expiryWindowDays: 30,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs all rules over the whole batch. The duplicate check issues
// one set-membership query for every plate in the batch rather than one per
// row.
func (v *Validator) Validate(ctx context.Context, records []Record) (IssueMap, error) {
	existing, err := v.lookupExisting(ctx, records)
	if err != nil {
		return nil, err
	}

	issues := make(IssueMap)
	for i, rec := range records {
		rowIssues := v.validateRow(i, rec, existing)
		if len(rowIssues) > 0 {
			issues[i] = rowIssues
		}
	}
	return issues, nil
}

// ValidateRow re-runs all rules for a single edited row. The duplicate check
// degrades to a one-plate membership query.
func (v *Validator) ValidateRow(ctx context.Context, row int, rec Record) ([]Issue, error) {
	existing, err := v.lookupExisting(ctx, []Record{rec})
	if err != nil {
		return nil, err
	}
	return v.validateRow(row, rec, existing), nil
}

func (v *Validator) lookupExisting(ctx context.Context, records []Record) (map[string]struct{}, error) {
	plates := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		normalized := NormalizePlate(rec.PlateNumber)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		plates = append(plates, normalized)
	}
	if len(plates) == 0 {
		return map[string]struct{}{}, nil
	}

	existing, err := v.plates.ExistingPlates(ctx, plates)
	if err != nil {
		return nil, errors.Wrap(err, "duplicate plate check failed")
	}
	return existing, nil
}

// validateRow applies the rules in fixed order: required, expiry, duplicate.
func (v *Validator) validateRow(row int, rec Record, existing map[string]struct{}) []Issue {
	var issues []Issue

	issues = append(issues, v.requiredIssues(row, rec)...)
	issues = append(issues, v.expiryIssues(row, rec)...)
	issues = append(issues, v.duplicateIssues(row, rec, existing)...)

	return issues
}

func (v *Validator) requiredIssues(row int, rec Record) []Issue {
	var issues []Issue
	required := []struct {
		field Field
		value string
	}{
		{FieldPlateNumber, rec.PlateNumber},
		{FieldBrand, rec.Brand},
		{FieldModel, rec.Model},
	}
	for _, r := range required {
		// Trimmed: a whitespace-only edit must not slip past the rule.
		if strings.TrimSpace(r.value) == "" {
			issues = append(issues, Issue{
				Row:      row,
				Field:    r.field,
				Message:  fmt.Sprintf("%s is required", r.field),
				Severity: SeverityError,
			})
		}
	}
	return issues
}

func (v *Validator) expiryIssues(row int, rec Record) []Issue {
	var issues []Issue
	expiries := []struct {
		field Field
		cell  CellValue
	}{
		{FieldInspectionExpiry, rec.InspectionExpiry},
		{FieldInsuranceExpiry, rec.InsuranceExpiry},
		{FieldRegistrationExpiry, rec.RegistrationExpiry},
	}

	today := v.now().Truncate(24 * time.Hour)
	window := today.AddDate(0, 0, v.expiryWindowDays)

	for _, e := range expiries {
		date, ok := ParseDate(e.cell)
		if !ok {
			continue
		}
		switch {
		case date.Before(today):
			issues = append(issues, Issue{
				Row:      row,
				Field:    e.field,
				Message:  fmt.Sprintf("%s has expired", e.field),
				Severity: SeverityWarning,
			})
		case !date.After(window):
			issues = append(issues, Issue{
				Row:      row,
				Field:    e.field,
				Message:  fmt.Sprintf("%s is expiring within %d days", e.field, v.expiryWindowDays),
				Severity: SeverityWarning,
			})
		}
	}
	return issues
}

func (v *Validator) duplicateIssues(row int, rec Record, existing map[string]struct{}) []Issue {
	normalized := NormalizePlate(rec.PlateNumber)
	if normalized == "" {
		return nil
	}
	if _, ok := existing[normalized]; !ok {
		return nil
	}
	return []Issue{{
		Row:      row,
		Field:    FieldPlateNumber,
		Message:  fmt.Sprintf("a vehicle with plate %s already exists", rec.PlateNumber),
		Severity: SeverityWarning,
	}}
}
