package usecases

import "context"

// ExecutionLocker serializes runs of the same rule across processes. TryLock
// returns acquired=false when another run holds the lock; release is non-nil
// only when the lock was acquired.
type ExecutionLocker interface {
	TryLock(ctx context.Context, ruleID uint) (release func(), acquired bool, err error)
}
