package uowmock

import (
	"context"
	"errors"
	"testing"

	"casetrack-backend/internal/domain/caserecord"
	"casetrack-backend/internal/domain/uow"
	"casetrack-backend/internal/testutil/auditmock"
	"casetrack-backend/internal/testutil/casemock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	cases := &casemock.Repo{}
	entries := &auditmock.Repo{}
	repos := uow.Repos{Cases: cases, Audit: entries}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			if fn == nil {
				t.Fatalf("WithinTx: fn is nil")
			}
			// simulate transaction body
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Cases != cases || r.Audit != entries {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("boom")

	m := &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error {
			return sentinel
		},
	}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_WithinTx_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{} // no funcs set
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
}

func TestUoW_WithinCaseTx_Happy(t *testing.T) {
	ctx := context.Background()

	cases := &casemock.Repo{}
	repos := uow.Repos{Cases: cases}
	lock := &caserecord.Case{ID: 7, CaseNumber: "EXP-2026-0007"}

	innerCalled := false
	m := &UoW{
		WithinCaseTxFn: func(gotCtx context.Context, caseID uint64, fn func(r uow.Repos, c *caserecord.Case) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinCaseTx: ctx mismatch")
			}
			if caseID != 7 {
				t.Fatalf("WithinCaseTx: caseID mismatch, got %d", caseID)
			}
			return fn(repos, lock)
		},
	}

	err := m.WithinCaseTx(ctx, 7, func(r uow.Repos, c *caserecord.Case) error {
		innerCalled = true
		if r.Cases != cases {
			t.Fatalf("WithinCaseTx: repos not forwarded")
		}
		if c != lock || c.CaseNumber != "EXP-2026-0007" {
			t.Fatalf("WithinCaseTx: case not forwarded correctly: %+v", c)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinCaseTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinCaseTx: inner fn not called")
	}
}

func TestUoW_WithinCaseTx_PropagatesError(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("stop")

	m := &UoW{
		WithinCaseTxFn: func(context.Context, uint64, func(uow.Repos, *caserecord.Case) error) error {
			return sentinel
		},
	}
	if err := m.WithinCaseTx(ctx, 9, func(uow.Repos, *caserecord.Case) error { return nil }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinCaseTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Default_Unimplemented_WithinCaseTx(t *testing.T) {
	ctx := context.Background()
	m := &UoW{} // no funcs set
	if err := m.WithinCaseTx(ctx, 9, func(uow.Repos, *caserecord.Case) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinCaseTx default: want errUnimplemented, got %v", err)
	}
}

func TestUoW_Passthrough_LocksViaGetByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	locked := &caserecord.Case{ID: 3, CaseNumber: "EXP-2026-0003"}
	cases := &casemock.Repo{
		GetByIDForUpdateFn: func(_ context.Context, id uint64) (*caserecord.Case, error) {
			if id != 3 {
				t.Fatalf("lock id mismatch: %d", id)
			}
			return locked, nil
		},
	}
	m := Passthrough(uow.Repos{Cases: cases})

	err := m.WithinCaseTx(ctx, 3, func(r uow.Repos, c *caserecord.Case) error {
		if c != locked {
			t.Fatalf("expected locked case forwarded")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestUoW_FluentSetters_And_Reset(t *testing.T) {
	m := New()
	if m.WithinTxFn != nil || m.WithinCaseTxFn != nil {
		t.Fatalf("New should start with nil funcs")
	}

	// set via fluent setters
	m.WithWithinTx(func(context.Context, func(uow.Repos) error) error { return nil }).
		WithWithinCaseTx(func(context.Context, uint64, func(uow.Repos, *caserecord.Case) error) error { return nil })

	if m.WithinTxFn == nil || m.WithinCaseTxFn == nil {
		t.Fatalf("fluent setters didn't assign funcs")
	}

	// reset clears funcs
	m.Reset()
	if m.WithinTxFn != nil || m.WithinCaseTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
