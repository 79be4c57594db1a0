package employee

import "context"

// Repository is the persistence port for employee records.
type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByID(ctx context.Context, id uint) (*Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context, page, pageSize int) ([]*Employee, int64, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id uint) error

	ListActive(ctx context.Context) ([]*Employee, error)
}

// Directory is the read port the assignment matcher evaluates against.
// Matching runs over in-memory snapshots so the predicate compiler stays
// independent of the directory's storage technology.
type Directory interface {
	ListActive(ctx context.Context) ([]*Employee, error)
}
