package vehicle

import "context"

func NewCreatedEvent(_ context.Context, data *Vehicle) *CreatedEvent {
	return &CreatedEvent{Data: data}
}

func NewUpdatedEvent(_ context.Context, data *Vehicle) *UpdatedEvent {
	return &UpdatedEvent{Data: data}
}

func NewDeletedEvent(_ context.Context, result *Vehicle) *DeletedEvent {
	return &DeletedEvent{Result: result}
}

type CreatedEvent struct {
	Data   *Vehicle
	Result *Vehicle
}

type UpdatedEvent struct {
	Data   *Vehicle
	Result *Vehicle
}

type DeletedEvent struct {
	Result *Vehicle
}
