package assignment

import "context"

type Repository interface {
	// Upsert assigns the technician to the supervisor, replacing any
	// existing assignment for that technician.
	Upsert(ctx context.Context, supervisorID, technicianID uint64) error
	Remove(ctx context.Context, technicianID uint64) error
	TechniciansFor(ctx context.Context, supervisorID uint64) ([]uint64, error)
	List(ctx context.Context) ([]Assignment, error)
}
