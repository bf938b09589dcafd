package owner

import "time"

// Owner is a vehicle owner resolved or created during import. Owners are
// referenced by name in spreadsheets and by id everywhere else.
type Owner struct {
	id        uint
	name      string
	phone     string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

type Option func(*Owner)

func WithID(id uint) Option {
	return func(o *Owner) {
		o.id = id
	}
}

func WithPhone(phone string) Option {
	return func(o *Owner) {
		o.phone = phone
	}
}

func WithEmail(email string) Option {
	return func(o *Owner) {
		o.email = email
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(o *Owner) {
		o.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(o *Owner) {
		o.updatedAt = updatedAt
	}
}

func New(name string, opts ...Option) *Owner {
	o := &Owner{
		name:      name,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Owner) ID() uint {
	return o.id
}

func (o *Owner) Name() string {
	return o.name
}

func (o *Owner) Phone() string {
	return o.phone
}

func (o *Owner) Email() string {
	return o.email
}

func (o *Owner) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Owner) UpdatedAt() time.Time {
	return o.updatedAt
}
