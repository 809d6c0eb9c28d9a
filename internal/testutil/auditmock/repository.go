package auditmock

import (
	"context"
	"sync"

	domain "casetrack-backend/internal/domain/audit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	InsertFn func(ctx context.Context, e *domain.Entry) error
	QueryFn  func(ctx context.Context, f domain.Filter) ([]domain.Entry, int64, error)
	ByCaseFn func(ctx context.Context, caseID uint64) ([]domain.Entry, error)
}

func (m *Repo) Insert(ctx context.Context, e *domain.Entry) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, e)
	}
	return nil
}
func (m *Repo) Query(ctx context.Context, f domain.Filter) ([]domain.Entry, int64, error) {
	if m.QueryFn != nil {
		return m.QueryFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) ByCase(ctx context.Context, caseID uint64) ([]domain.Entry, error) {
	if m.ByCaseFn != nil {
		return m.ByCaseFn(ctx, caseID)
	}
	return nil, context.Canceled
}

// Recorder captures recorded entries for assertions. With PanicOnRecord
// set it blows up instead, to prove callers survive a broken recorder.
type Recorder struct {
	mu            sync.Mutex
	Entries       []domain.Entry
	PanicOnRecord bool
}

func (m *Recorder) Record(ctx context.Context, e domain.Entry) {
	if m.PanicOnRecord {
		panic("auditmock: recorder exploded")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, e)
}

// Recorded returns a copy of everything captured so far.
func (m *Recorder) Recorded() []domain.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Entry, len(m.Entries))
	copy(out, m.Entries)
	return out
}
