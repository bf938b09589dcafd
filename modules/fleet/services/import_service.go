package services

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/vehicle"
	"github.com/rentora/rentora/modules/fleet/importing"
	"github.com/rentora/rentora/pkg/configuration"
	"github.com/rentora/rentora/pkg/metrics"
)

// ImportService drives the bulk vehicle import: parse, map, validate, hold
// for correction, commit. Each Preview call opens an independent session;
// sessions are never shared between imports.
type ImportService struct {
	vehicles *VehicleService
	owners   *OwnerService
	plates   importing.PlateChecker
	opts     configuration.ImportOptions
	log      *logrus.Logger
}

func NewImportService(
	vehicles *VehicleService,
	owners *OwnerService,
	plates importing.PlateChecker,
	opts configuration.ImportOptions,
	log *logrus.Logger,
) *ImportService {
	return &ImportService{
		vehicles: vehicles,
		owners:   owners,
		plates:   plates,
		opts:     opts,
		log:      log,
	}
}

// Preview parses the workbook, maps every row and validates the batch. The
// returned session carries the records and their issues for the correction
// step.
func (s *ImportService) Preview(ctx context.Context, r io.Reader) (*importing.Session, error) {
	rawRows, err := importing.ParseWorkbook(r)
	if err != nil {
		return nil, err
	}
	if len(rawRows) > s.opts.MaxRows {
		return nil, errors.Errorf("workbook has %d rows, limit is %d", len(rawRows), s.opts.MaxRows)
	}

	records := make([]importing.Record, 0, len(rawRows))
	for _, raw := range rawRows {
		records = append(records, importing.MapRow(raw))
	}

	validator := importing.NewValidator(s.plates, importing.WithExpiryWindow(s.opts.ExpiryWarningDays))
	sess, err := importing.NewSession(ctx, records, validator)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"rows":    sess.Len(),
		"blocked": sess.Blocked(),
	}).Info("vehicle import previewed")
	return sess, nil
}

// UpdateRow applies a row-level correction and re-validates only that row.
func (s *ImportService) UpdateRow(ctx context.Context, sess *importing.Session, row int, rec importing.Record) error {
	return sess.UpdateRecord(ctx, row, rec)
}

// Commit persists the session's rows sequentially, isolating per-row
// failures. It refuses to run while blocking errors remain.
func (s *ImportService) Commit(ctx context.Context, sess *importing.Session) (*importing.Result, error) {
	committer := importing.NewCommitter(s.vehicles, s.owners, s.log)
	result, err := committer.Commit(ctx, sess)
	if err != nil {
		return nil, err
	}

	metrics.ImportBatchesTotal.Inc()
	metrics.ImportRowsTotal.WithLabelValues("success").Add(float64(result.Success))
	metrics.ImportRowsTotal.WithLabelValues("failed").Add(float64(result.Failed))

	s.log.WithFields(logrus.Fields{
		"success":  result.Success,
		"failed":   result.Failed,
		"warnings": result.Warnings,
	}).Info("vehicle import committed")
	return result, nil
}

// Template writes the reference import workbook.
func (s *ImportService) Template(w io.Writer) error {
	return importing.WriteTemplate(w)
}

var (
	_ importing.VehicleCreator = (*VehicleService)(nil)
	_ importing.OwnerResolver  = (*OwnerService)(nil)
	_ importing.PlateChecker   = (vehicle.Repository)(nil)
)
