package persistence

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/owner"
	"github.com/rentora/rentora/modules/fleet/infrastructure/persistence/models"
	"github.com/rentora/rentora/pkg/composables"
)

var (
	ErrOwnerNotFound = errors.New("owner not found")
)

const (
	ownerFindQuery = `
        SELECT
            o.id,
            o.name,
            o.phone,
            o.email,
            o.created_at,
            o.updated_at
        FROM owners o`

	ownerInsertQuery = `
        INSERT INTO owners (name, phone, email, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`
)

type PgOwnerRepository struct{}

func NewOwnerRepository() owner.Repository {
	return &PgOwnerRepository{}
}

func (g *PgOwnerRepository) queryOwners(ctx context.Context, query string, args ...interface{}) ([]*owner.Owner, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query owners")
	}
	defer rows.Close()

	owners := make([]*owner.Owner, 0)
	for rows.Next() {
		var dbOwner models.Owner
		if err := rows.Scan(
			&dbOwner.ID,
			&dbOwner.Name,
			&dbOwner.Phone,
			&dbOwner.Email,
			&dbOwner.CreatedAt,
			&dbOwner.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan owner")
		}
		owners = append(owners, ToDomainOwner(&dbOwner))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration failed")
	}
	return owners, nil
}

func (g *PgOwnerRepository) GetAll(ctx context.Context) ([]*owner.Owner, error) {
	return g.queryOwners(ctx, ownerFindQuery+" ORDER BY o.id")
}

func (g *PgOwnerRepository) GetByID(ctx context.Context, id uint) (*owner.Owner, error) {
	owners, err := g.queryOwners(ctx, ownerFindQuery+" WHERE o.id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, ErrOwnerNotFound
	}
	return owners[0], nil
}

func (g *PgOwnerRepository) GetByName(ctx context.Context, name string) (*owner.Owner, error) {
	owners, err := g.queryOwners(ctx, ownerFindQuery+" WHERE o.name = $1", name)
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, ErrOwnerNotFound
	}
	return owners[0], nil
}

func (g *PgOwnerRepository) Create(ctx context.Context, data *owner.Owner) (*owner.Owner, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	dbOwner := ToDBOwner(data)
	var id uint
	if err := tx.QueryRow(
		ctx,
		ownerInsertQuery,
		dbOwner.Name,
		dbOwner.Phone,
		dbOwner.Email,
		dbOwner.CreatedAt,
		dbOwner.UpdatedAt,
	).Scan(&id); err != nil {
		return nil, errors.Wrap(err, "failed to insert owner")
	}

	return g.GetByID(ctx, id)
}
