package importing

import (
	"context"

	"github.com/pkg/errors"
)

var ErrRowOutOfRange = errors.New("row index out of range")

// Session owns the records and issue map of one import between validation and
// commit. A session belongs to exactly one import dialog; it is not safe for
// concurrent use and must not be shared across imports.
type Session struct {
	records   []Record
	issues    IssueMap
	validator *Validator
}

// NewSession validates the full batch once and captures the result.
func NewSession(ctx context.Context, records []Record, validator *Validator) (*Session, error) {
	issues, err := validator.Validate(ctx, records)
	if err != nil {
		return nil, err
	}
	return &Session{
		records:   records,
		issues:    issues,
		validator: validator,
	}, nil
}

func (s *Session) Len() int {
	return len(s.records)
}

// Records returns the records in their original sequence order.
func (s *Session) Records() []Record {
	return s.records
}

func (s *Session) Record(row int) (Record, error) {
	if row < 0 || row >= len(s.records) {
		return Record{}, ErrRowOutOfRange
	}
	return s.records[row], nil
}

func (s *Session) Issues() IssueMap {
	return s.issues
}

// Blocked reports whether any row still carries a blocking error.
func (s *Session) Blocked() bool {
	return s.issues.Blocked()
}

// UpdateRecord replaces the record at the given row and re-validates only
// that row, replacing its previous issue list. The edited record can never
// carry a stale validation result: the replacement and the re-validation are
// a single step.
func (s *Session) UpdateRecord(ctx context.Context, row int, rec Record) error {
	if row < 0 || row >= len(s.records) {
		return ErrRowOutOfRange
	}

	rowIssues, err := s.validator.ValidateRow(ctx, row, rec)
	if err != nil {
		return err
	}

	s.records[row] = rec
	if len(rowIssues) == 0 {
		delete(s.issues, row)
	} else {
		s.issues[row] = rowIssues
	}
	return nil
}

// RowWarnings reports whether the given row carries at least one
// warning-severity issue.
func (s *Session) RowWarnings(row int) bool {
	for _, issue := range s.issues[row] {
		if issue.Severity == SeverityWarning {
			return true
		}
	}
	return false
}
