package vehicle

import "context"

type FindParams struct {
	Limit  int
	Offset int
	Search string
	Status Status
}

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetAll(ctx context.Context) ([]*Vehicle, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Vehicle, error)
	GetByID(ctx context.Context, id uint) (*Vehicle, error)
	GetByPlateNumber(ctx context.Context, plateNumber string) (*Vehicle, error)
	// ExistingPlates answers set membership for the given normalized plate
	// numbers in one round-trip. Used by the import duplicate check.
	ExistingPlates(ctx context.Context, plateNumbers []string) (map[string]struct{}, error)
	Create(ctx context.Context, data *Vehicle) (*Vehicle, error)
	Update(ctx context.Context, data *Vehicle) (*Vehicle, error)
	Delete(ctx context.Context, id uint) error
}
