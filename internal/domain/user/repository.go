package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// IsActive reports whether the user exists, is active and not soft-deleted.
	IsActive(ctx context.Context, id uint64) (bool, error)
	// ListByRole returns the active users holding the given role.
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
