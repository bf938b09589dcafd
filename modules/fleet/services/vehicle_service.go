package services

import (
	"context"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/vehicle"
	"github.com/rentora/rentora/pkg/cache"
	"github.com/rentora/rentora/pkg/composables"
	"github.com/rentora/rentora/pkg/eventbus"
)

const vehicleListCacheKey = "vehicles:all"

// VehicleService fronts the vehicle repository. The list cache is an explicit
// TTL cache owned by whoever constructs the service, never package state.
type VehicleService struct {
	repo      vehicle.Repository
	publisher eventbus.EventBus
	listCache *cache.Cache[string, []*vehicle.Vehicle]
}

func NewVehicleService(
	repo vehicle.Repository,
	publisher eventbus.EventBus,
	listCache *cache.Cache[string, []*vehicle.Vehicle],
) *VehicleService {
	return &VehicleService{
		repo:      repo,
		publisher: publisher,
		listCache: listCache,
	}
}

func (s *VehicleService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *VehicleService) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	if s.listCache != nil {
		if cached, ok := s.listCache.Get(vehicleListCacheKey); ok {
			return cached, nil
		}
	}
	vehicles, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.listCache != nil {
		s.listCache.Set(vehicleListCacheKey, vehicles)
	}
	return vehicles, nil
}

func (s *VehicleService) GetPaginated(ctx context.Context, params *vehicle.FindParams) ([]*vehicle.Vehicle, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *VehicleService) GetByID(ctx context.Context, id uint) (*vehicle.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VehicleService) GetByPlateNumber(ctx context.Context, plateNumber string) (*vehicle.Vehicle, error) {
	return s.repo.GetByPlateNumber(ctx, plateNumber)
}

func (s *VehicleService) Create(ctx context.Context, data *vehicle.Vehicle) (*vehicle.Vehicle, error) {
	createdEvent := vehicle.NewCreatedEvent(ctx, data)

	var created *vehicle.Vehicle
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListCache()
	createdEvent.Result = created
	s.publisher.Publish(createdEvent)
	return created, nil
}

func (s *VehicleService) Update(ctx context.Context, data *vehicle.Vehicle) (*vehicle.Vehicle, error) {
	updatedEvent := vehicle.NewUpdatedEvent(ctx, data)

	var updated *vehicle.Vehicle
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.repo.Update(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListCache()
	updatedEvent.Result = updated
	s.publisher.Publish(updatedEvent)
	return updated, nil
}

func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.invalidateListCache()
	s.publisher.Publish(vehicle.NewDeletedEvent(ctx, existing))
	return nil
}

func (s *VehicleService) invalidateListCache() {
	if s.listCache != nil {
		s.listCache.Delete(vehicleListCacheKey)
	}
}
