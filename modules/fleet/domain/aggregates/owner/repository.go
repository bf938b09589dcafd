package owner

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]*Owner, error)
	GetByID(ctx context.Context, id uint) (*Owner, error)
	// GetByName matches on the exact stored name.
	GetByName(ctx context.Context, name string) (*Owner, error)
	Create(ctx context.Context, data *Owner) (*Owner, error)
}
