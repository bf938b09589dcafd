package services

import (
	"context"
	"errors"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/owner"
	"github.com/rentora/rentora/modules/fleet/infrastructure/persistence"
)

type OwnerService struct {
	repo owner.Repository
}

func NewOwnerService(repo owner.Repository) *OwnerService {
	return &OwnerService{repo: repo}
}

func (s *OwnerService) GetAll(ctx context.Context) ([]*owner.Owner, error) {
	return s.repo.GetAll(ctx)
}

func (s *OwnerService) GetByID(ctx context.Context, id uint) (*owner.Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OwnerService) Create(ctx context.Context, data *owner.Owner) (*owner.Owner, error) {
	return s.repo.Create(ctx, data)
}

// FindOrCreate resolves an owner by exact name, creating one when absent.
// There is no uniqueness lock: two concurrent imports resolving the same new
// name can both create it. The import pipeline avoids this by committing rows
// sequentially within a batch; cross-batch races remain a known limitation.
func (s *OwnerService) FindOrCreate(ctx context.Context, name string) (uint, error) {
	existing, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return existing.ID(), nil
	}
	if !errors.Is(err, persistence.ErrOwnerNotFound) {
		return 0, err
	}

	created, err := s.repo.Create(ctx, owner.New(name))
	if err != nil {
		return 0, err
	}
	return created.ID(), nil
}
