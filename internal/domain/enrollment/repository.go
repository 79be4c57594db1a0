package enrollment

import "context"

// Repository is the enrollment store port. Create must enforce uniqueness
// on (employee, course) at the storage layer and return ErrAlreadyEnrolled
// on a duplicate; the existence pre-check in the execution engine is only
// an early exit.
type Repository interface {
	Create(ctx context.Context, enr *Enrollment) error
	Exists(ctx context.Context, employeeID, courseID uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*Enrollment, error)
	ListByEmployee(ctx context.Context, employeeID uint) ([]*Enrollment, error)
	ListByCourse(ctx context.Context, courseID uint) ([]*Enrollment, error)
}
