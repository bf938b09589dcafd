package persistence

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/vehicle"
	"github.com/rentora/rentora/modules/fleet/infrastructure/persistence/models"
	"github.com/rentora/rentora/pkg/composables"
	"github.com/rentora/rentora/pkg/repo"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
)

const (
	vehicleFindQuery = `
        SELECT
            v.id,
            v.plate_number,
            v.brand,
            v.model,
            v.year,
            v.color,
            v.vin,
            v.chassis_number,
            v.engine_number,
            v.registration_type,
            v.owner_id,
            v.status,
            v.inspection_status,
            v.insurance_status,
            v.renewal_status,
            v.inspection_expiry,
            v.insurance_expiry,
            v.registration_expiry,
            v.renewal_fees,
            v.daily_rate,
            v.mileage,
            v.seating_capacity,
            v.created_at,
            v.updated_at
        FROM vehicles v`

	vehicleCountQuery = `SELECT COUNT(v.id) FROM vehicles v`

	vehicleExistingPlatesQuery = `SELECT v.plate_number FROM vehicles v WHERE v.plate_number = ANY($1)`

	vehicleInsertQuery = `
        INSERT INTO vehicles (
            plate_number, brand, model, year, color, vin, chassis_number,
            engine_number, registration_type, owner_id, status,
            inspection_status, insurance_status, renewal_status,
            inspection_expiry, insurance_expiry, registration_expiry,
            renewal_fees, daily_rate, mileage, seating_capacity,
            created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
            $15, $16, $17, $18, $19, $20, $21, $22, $23
        ) RETURNING id`

	vehicleUpdateQuery = `
        UPDATE vehicles SET
            plate_number = $1,
            brand = $2,
            model = $3,
            year = $4,
            color = $5,
            vin = $6,
            chassis_number = $7,
            engine_number = $8,
            registration_type = $9,
            owner_id = $10,
            status = $11,
            inspection_status = $12,
            insurance_status = $13,
            renewal_status = $14,
            inspection_expiry = $15,
            insurance_expiry = $16,
            registration_expiry = $17,
            renewal_fees = $18,
            daily_rate = $19,
            mileage = $20,
            seating_capacity = $21,
            updated_at = NOW()
        WHERE id = $22`

	vehicleDeleteQuery = `DELETE FROM vehicles WHERE id = $1`
)

type PgVehicleRepository struct{}

func NewVehicleRepository() vehicle.Repository {
	return &PgVehicleRepository{}
}

func (g *PgVehicleRepository) queryVehicles(ctx context.Context, query string, args ...interface{}) ([]*vehicle.Vehicle, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query vehicles")
	}
	defer rows.Close()

	vehicles := make([]*vehicle.Vehicle, 0)
	for rows.Next() {
		var dbVehicle models.Vehicle
		if err := rows.Scan(
			&dbVehicle.ID,
			&dbVehicle.PlateNumber,
			&dbVehicle.Brand,
			&dbVehicle.Model,
			&dbVehicle.Year,
			&dbVehicle.Color,
			&dbVehicle.VIN,
			&dbVehicle.ChassisNumber,
			&dbVehicle.EngineNumber,
			&dbVehicle.RegistrationType,
			&dbVehicle.OwnerID,
			&dbVehicle.Status,
			&dbVehicle.InspectionStatus,
			&dbVehicle.InsuranceStatus,
			&dbVehicle.RenewalStatus,
			&dbVehicle.InspectionExpiry,
			&dbVehicle.InsuranceExpiry,
			&dbVehicle.RegistrationExpiry,
			&dbVehicle.RenewalFees,
			&dbVehicle.DailyRate,
			&dbVehicle.Mileage,
			&dbVehicle.SeatingCapacity,
			&dbVehicle.CreatedAt,
			&dbVehicle.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan vehicle")
		}
		vehicles = append(vehicles, ToDomainVehicle(&dbVehicle))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration failed")
	}
	return vehicles, nil
}

func (g *PgVehicleRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}

	var count int64
	if err := tx.QueryRow(ctx, vehicleCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count vehicles")
	}
	return count, nil
}

func (g *PgVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	return g.queryVehicles(ctx, vehicleFindQuery+" ORDER BY v.id")
}

func (g *PgVehicleRepository) GetPaginated(ctx context.Context, params *vehicle.FindParams) ([]*vehicle.Vehicle, error) {
	if params == nil {
		params = &vehicle.FindParams{}
	}

	where := []string{}
	args := []interface{}{}

	if params.Status != "" {
		where = append(where, fmt.Sprintf("v.status = $%d", len(args)+1))
		args = append(args, string(params.Status))
	}
	if params.Search != "" {
		index := len(args) + 1
		where = append(
			where,
			fmt.Sprintf(
				"(v.plate_number ILIKE $%d OR v.brand ILIKE $%d OR v.model ILIKE $%d OR v.vin ILIKE $%d)",
				index, index, index, index,
			),
		)
		args = append(args, "%"+params.Search+"%")
	}

	query := repo.Join(
		vehicleFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY v.id",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)
	return g.queryVehicles(ctx, query, args...)
}

func (g *PgVehicleRepository) GetByID(ctx context.Context, id uint) (*vehicle.Vehicle, error) {
	vehicles, err := g.queryVehicles(ctx, vehicleFindQuery+" WHERE v.id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, ErrVehicleNotFound
	}
	return vehicles[0], nil
}

func (g *PgVehicleRepository) GetByPlateNumber(ctx context.Context, plateNumber string) (*vehicle.Vehicle, error) {
	vehicles, err := g.queryVehicles(ctx, vehicleFindQuery+" WHERE v.plate_number = $1", plateNumber)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, ErrVehicleNotFound
	}
	return vehicles[0], nil
}

// ExistingPlates answers set membership for a batch of normalized plate
// numbers in one round-trip, which keeps the import duplicate check at one
// query per batch instead of one per row.
func (g *PgVehicleRepository) ExistingPlates(ctx context.Context, plateNumbers []string) (map[string]struct{}, error) {
	if len(plateNumbers) == 0 {
		return map[string]struct{}{}, nil
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, vehicleExistingPlatesQuery, plateNumbers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query existing plates")
	}
	defer rows.Close()

	existing := make(map[string]struct{}, len(plateNumbers))
	for rows.Next() {
		var plate string
		if err := rows.Scan(&plate); err != nil {
			return nil, errors.Wrap(err, "failed to scan plate")
		}
		existing[plate] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration failed")
	}
	return existing, nil
}

func (g *PgVehicleRepository) Create(ctx context.Context, data *vehicle.Vehicle) (*vehicle.Vehicle, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	dbVehicle := ToDBVehicle(data)
	var id uint
	if err := tx.QueryRow(
		ctx,
		vehicleInsertQuery,
		dbVehicle.PlateNumber,
		dbVehicle.Brand,
		dbVehicle.Model,
		dbVehicle.Year,
		dbVehicle.Color,
		dbVehicle.VIN,
		dbVehicle.ChassisNumber,
		dbVehicle.EngineNumber,
		dbVehicle.RegistrationType,
		dbVehicle.OwnerID,
		dbVehicle.Status,
		dbVehicle.InspectionStatus,
		dbVehicle.InsuranceStatus,
		dbVehicle.RenewalStatus,
		dbVehicle.InspectionExpiry,
		dbVehicle.InsuranceExpiry,
		dbVehicle.RegistrationExpiry,
		dbVehicle.RenewalFees,
		dbVehicle.DailyRate,
		dbVehicle.Mileage,
		dbVehicle.SeatingCapacity,
		dbVehicle.CreatedAt,
		dbVehicle.UpdatedAt,
	).Scan(&id); err != nil {
		return nil, errors.Wrap(err, "failed to insert vehicle")
	}

	return g.GetByID(ctx, id)
}

func (g *PgVehicleRepository) Update(ctx context.Context, data *vehicle.Vehicle) (*vehicle.Vehicle, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	dbVehicle := ToDBVehicle(data)
	tag, err := tx.Exec(
		ctx,
		vehicleUpdateQuery,
		dbVehicle.PlateNumber,
		dbVehicle.Brand,
		dbVehicle.Model,
		dbVehicle.Year,
		dbVehicle.Color,
		dbVehicle.VIN,
		dbVehicle.ChassisNumber,
		dbVehicle.EngineNumber,
		dbVehicle.RegistrationType,
		dbVehicle.OwnerID,
		dbVehicle.Status,
		dbVehicle.InspectionStatus,
		dbVehicle.InsuranceStatus,
		dbVehicle.RenewalStatus,
		dbVehicle.InspectionExpiry,
		dbVehicle.InsuranceExpiry,
		dbVehicle.RegistrationExpiry,
		dbVehicle.RenewalFees,
		dbVehicle.DailyRate,
		dbVehicle.Mileage,
		dbVehicle.SeatingCapacity,
		dbVehicle.ID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update vehicle")
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrVehicleNotFound
	}

	return g.GetByID(ctx, dbVehicle.ID)
}

func (g *PgVehicleRepository) Delete(ctx context.Context, id uint) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	tag, err := tx.Exec(ctx, vehicleDeleteQuery, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete vehicle")
	}
	if tag.RowsAffected() == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
