package importing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/vehicle"
)

// ErrCommitBlocked is returned when commit is attempted while the session
// still carries blocking validation errors. Callers gate on Blocked() before
// commit; this re-check exists because UI state and data state can race.
var ErrCommitBlocked = errors.New("cannot commit: batch has blocking validation errors")

// OwnerResolver resolves an owner name to a persisted owner id, creating the
// owner when no exact-name match exists.
type OwnerResolver interface {
	FindOrCreate(ctx context.Context, name string) (uint, error)
}

// VehicleCreator persists one fully resolved vehicle.
type VehicleCreator interface {
	Create(ctx context.Context, data *vehicle.Vehicle) (*vehicle.Vehicle, error)
}

// Committer turns a validated session into persisted vehicles, one insert per
// row, sequentially. Rows fail independently: a rejected insert lands in the
// result's error table and the loop moves on.
type Committer struct {
	vehicles VehicleCreator
	owners   OwnerResolver
	log      *logrus.Logger
}

func NewCommitter(vehicles VehicleCreator, owners OwnerResolver, log *logrus.Logger) *Committer {
	return &Committer{
		vehicles: vehicles,
		owners:   owners,
		log:      log,
	}
}

// Commit processes the session's rows in order. Rows run strictly one at a
// time: the owner find-or-create step is racy under concurrency, and the
// progress counters are expected to grow monotonically with one in-flight
// row. Once started the batch runs to completion; there is no cancellation.
func (c *Committer) Commit(ctx context.Context, sess *Session) (*Result, error) {
	if sess.Blocked() {
		return nil, ErrCommitBlocked
	}

	result := &Result{Errors: []RowError{}}
	// Owner names already resolved in this batch; the second row referencing
	// a new owner reuses the id the first row created.
	resolvedOwners := make(map[string]uint)

	for row, rec := range sess.Records() {
		data, err := c.buildVehicle(ctx, rec, resolvedOwners)
		if err != nil {
			c.recordFailure(result, row, rec, err)
			continue
		}

		if _, err := c.vehicles.Create(ctx, data); err != nil {
			c.recordFailure(result, row, rec, err)
			continue
		}

		result.Success++
		if sess.RowWarnings(row) {
			result.Warnings++
		}
	}

	return result, nil
}

func (c *Committer) recordFailure(result *Result, row int, rec Record, err error) {
	if c.log != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"row":   row,
			"plate": rec.PlateNumber,
		}).Warn("vehicle import row failed")
	}
	result.Failed++
	result.Errors = append(result.Errors, RowError{
		Row:     row,
		Plate:   rec.PlateNumber,
		Message: err.Error(),
	})
}

// buildVehicle normalizes identifying fields, resolves the owner reference,
// parses expiry dates and maps enum labels into a persistable vehicle.
func (c *Committer) buildVehicle(ctx context.Context, rec Record, resolvedOwners map[string]uint) (*vehicle.Vehicle, error) {
	opts := []vehicle.Option{
		vehicle.WithYear(rec.Year),
		vehicle.WithStatus(StatusFromLabel(rec.Status)),
		vehicle.WithInspectionStatus(DocStatusFromLabel(rec.InspectionStatus)),
		vehicle.WithInsuranceStatus(DocStatusFromLabel(rec.InsuranceStatus)),
		vehicle.WithRenewalStatus(DocStatusFromLabel(rec.RenewalStatus)),
		vehicle.WithRenewalFees(rec.RenewalFees),
		vehicle.WithDailyRate(rec.DailyRate),
	}

	if rec.Color != "" {
		opts = append(opts, vehicle.WithColor(rec.Color))
	}
	if rec.VIN != "" {
		opts = append(opts, vehicle.WithVIN(rec.VIN))
	}
	if rec.ChassisNumber != "" {
		opts = append(opts, vehicle.WithChassisNumber(rec.ChassisNumber))
	}
	if rec.EngineNumber != "" {
		opts = append(opts, vehicle.WithEngineNumber(rec.EngineNumber))
	}
	if rec.RegistrationType != "" {
		opts = append(opts, vehicle.WithRegistrationType(rec.RegistrationType))
	}
	if rec.Mileage != nil {
		opts = append(opts, vehicle.WithMileage(rec.Mileage))
	}
	if rec.SeatingCapacity != nil {
		opts = append(opts, vehicle.WithSeatingCapacity(rec.SeatingCapacity))
	}

	// Unparseable expiry dates are stored as absent; validation already
	// surfaced them as warnings.
	if date, ok := ParseDate(rec.InspectionExpiry); ok {
		opts = append(opts, vehicle.WithInspectionExpiry(&date))
	}
	if date, ok := ParseDate(rec.InsuranceExpiry); ok {
		opts = append(opts, vehicle.WithInsuranceExpiry(&date))
	}
	if date, ok := ParseDate(rec.RegistrationExpiry); ok {
		opts = append(opts, vehicle.WithRegistrationExpiry(&date))
	}

	if rec.OwnerName != "" {
		ownerID, ok := resolvedOwners[rec.OwnerName]
		if !ok {
			var err error
			ownerID, err = c.owners.FindOrCreate(ctx, rec.OwnerName)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to resolve owner %q", rec.OwnerName)
			}
			resolvedOwners[rec.OwnerName] = ownerID
		}
		opts = append(opts, vehicle.WithOwnerID(&ownerID))
	}

	return vehicle.New(
		NormalizePlate(rec.PlateNumber),
		NormalizeBrand(rec.Brand),
		rec.Model,
		opts...,
	), nil
}
