package persistence

import (
	"github.com/rentora/rentora/modules/fleet/domain/aggregates/owner"
	"github.com/rentora/rentora/modules/fleet/domain/aggregates/vehicle"
	"github.com/rentora/rentora/modules/fleet/infrastructure/persistence/models"
	"github.com/rentora/rentora/pkg/mapping"
)

func ToDomainVehicle(dbVehicle *models.Vehicle) *vehicle.Vehicle {
	opts := []vehicle.Option{
		vehicle.WithID(dbVehicle.ID),
		vehicle.WithYear(dbVehicle.Year),
		vehicle.WithColor(dbVehicle.Color.String),
		vehicle.WithVIN(dbVehicle.VIN.String),
		vehicle.WithChassisNumber(dbVehicle.ChassisNumber.String),
		vehicle.WithEngineNumber(dbVehicle.EngineNumber.String),
		vehicle.WithRegistrationType(dbVehicle.RegistrationType.String),
		vehicle.WithStatus(vehicle.Status(dbVehicle.Status)),
		vehicle.WithInspectionStatus(vehicle.DocStatus(dbVehicle.InspectionStatus)),
		vehicle.WithInsuranceStatus(vehicle.DocStatus(dbVehicle.InsuranceStatus)),
		vehicle.WithRenewalStatus(vehicle.DocStatus(dbVehicle.RenewalStatus)),
		vehicle.WithInspectionExpiry(mapping.SQLNullTimeToPointer(dbVehicle.InspectionExpiry)),
		vehicle.WithInsuranceExpiry(mapping.SQLNullTimeToPointer(dbVehicle.InsuranceExpiry)),
		vehicle.WithRegistrationExpiry(mapping.SQLNullTimeToPointer(dbVehicle.RegistrationExpiry)),
		vehicle.WithRenewalFees(dbVehicle.RenewalFees),
		vehicle.WithDailyRate(dbVehicle.DailyRate),
		vehicle.WithMileage(mapping.SQLNullInt64ToPointer(dbVehicle.Mileage)),
		vehicle.WithSeatingCapacity(mapping.SQLNullInt64ToPointer(dbVehicle.SeatingCapacity)),
		vehicle.WithCreatedAt(dbVehicle.CreatedAt),
		vehicle.WithUpdatedAt(dbVehicle.UpdatedAt),
	}

	if dbVehicle.OwnerID.Valid {
		ownerID := uint(dbVehicle.OwnerID.Int64)
		opts = append(opts, vehicle.WithOwnerID(&ownerID))
	}

	return vehicle.New(
		dbVehicle.PlateNumber,
		dbVehicle.Brand,
		dbVehicle.Model,
		opts...,
	)
}

func ToDBVehicle(entity *vehicle.Vehicle) *models.Vehicle {
	dbVehicle := &models.Vehicle{
		ID:                 entity.ID(),
		PlateNumber:        entity.PlateNumber(),
		Brand:              entity.Brand(),
		Model:              entity.Model(),
		Year:               entity.Year(),
		Color:              mapping.ValueToSQLNullString(entity.Color()),
		VIN:                mapping.ValueToSQLNullString(entity.VIN()),
		ChassisNumber:      mapping.ValueToSQLNullString(entity.ChassisNumber()),
		EngineNumber:       mapping.ValueToSQLNullString(entity.EngineNumber()),
		RegistrationType:   mapping.ValueToSQLNullString(entity.RegistrationType()),
		Status:             string(entity.Status()),
		InspectionStatus:   string(entity.InspectionStatus()),
		InsuranceStatus:    string(entity.InsuranceStatus()),
		RenewalStatus:      string(entity.RenewalStatus()),
		InspectionExpiry:   mapping.PointerToSQLNullTime(entity.InspectionExpiry()),
		InsuranceExpiry:    mapping.PointerToSQLNullTime(entity.InsuranceExpiry()),
		RegistrationExpiry: mapping.PointerToSQLNullTime(entity.RegistrationExpiry()),
		RenewalFees:        entity.RenewalFees(),
		DailyRate:          entity.DailyRate(),
		Mileage:            mapping.PointerToSQLNullInt64(entity.Mileage()),
		SeatingCapacity:    mapping.PointerToSQLNullInt64(entity.SeatingCapacity()),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}

	if ownerID := entity.OwnerID(); ownerID != nil {
		dbVehicle.OwnerID.Int64 = int64(*ownerID)
		dbVehicle.OwnerID.Valid = true
	}

	return dbVehicle
}

func ToDomainOwner(dbOwner *models.Owner) *owner.Owner {
	return owner.New(
		dbOwner.Name,
		owner.WithID(dbOwner.ID),
		owner.WithPhone(dbOwner.Phone.String),
		owner.WithEmail(dbOwner.Email.String),
		owner.WithCreatedAt(dbOwner.CreatedAt),
		owner.WithUpdatedAt(dbOwner.UpdatedAt),
	)
}

func ToDBOwner(entity *owner.Owner) *models.Owner {
	return &models.Owner{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Phone:     mapping.ValueToSQLNullString(entity.Phone()),
		Email:     mapping.ValueToSQLNullString(entity.Email()),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
