package course

import "context"

// Repository is the course store port.
type Repository interface {
	Create(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id uint) (*Course, error)
	List(ctx context.Context, page, pageSize int) ([]*Course, int64, error)
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id uint) error
}
