package uowmock

import (
	"context"
	"errors"

	"casetrack-backend/internal/domain/caserecord"
	"casetrack-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinCaseTxFn func(ctx context.Context, caseID uint64, fn func(r uow.Repos, c *caserecord.Case) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinCaseTx(fn func(context.Context, uint64, func(uow.Repos, *caserecord.Case) error) error) *UoW {
	m.WithinCaseTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinCaseTx(ctx context.Context, caseID uint64, fn func(r uow.Repos, c *caserecord.Case) error) error {
	if m.WithinCaseTxFn != nil {
		return m.WithinCaseTxFn(ctx, caseID, fn)
	}
	return errUnimplemented
}

// Passthrough builds a UoW whose transactions simply run the body with
// the given repos, locking cases via GetByIDForUpdate.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinCaseTxFn: func(ctx context.Context, caseID uint64, fn func(uow.Repos, *caserecord.Case) error) error {
			c, err := repos.Cases.GetByIDForUpdate(ctx, caseID)
			if err != nil {
				return err
			}
			return fn(repos, c)
		},
	}
}
