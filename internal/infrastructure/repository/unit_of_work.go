// Package repository implements the domain repositories over database/sql
// (PostgreSQL) and the UnitOfWork transaction boundary that coordinates them.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrTransactionInProgress is returned by Begin when the unit of work
	// already holds an open transaction.
	ErrTransactionInProgress = errors.New("a transaction is already in progress")

	// ErrNoTransaction is returned by Commit/Rollback when no transaction
	// is open.
	ErrNoTransaction = errors.New("no transaction in progress")
)

// executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories run every statement through it so the same repository works
// inside and outside a transaction.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UnitOfWork binds the four repositories to one shared connection and at
// most one open transaction. It is not safe for concurrent use; create one
// per logical operation.
type UnitOfWork struct {
	db *sql.DB
	tx *sql.Tx

	Persons     *PersonRepository
	Cities      *CityRepository
	Phones      *PhoneNumberRepository
	Connections *PersonConnectionRepository
}

// NewUnitOfWork creates a unit of work with all repositories constructed
// eagerly against the shared executor.
func NewUnitOfWork(db *sql.DB) *UnitOfWork {
	u := &UnitOfWork{db: db}
	u.Persons = &PersonRepository{u}
	u.Cities = &CityRepository{u}
	u.Phones = &PhoneNumberRepository{u}
	u.Connections = &PersonConnectionRepository{u}
	return u
}

// Begin opens a transaction. Nested transactions are not supported.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTransactionInProgress
	}
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	u.tx = tx
	return nil
}

// Commit commits the open transaction. On failure the transaction is
// already aborted server-side; no client rollback is attempted.
func (u *UnitOfWork) Commit() error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	tx := u.tx
	u.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback discards the open transaction.
func (u *UnitOfWork) Rollback() error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	tx := u.tx
	u.tx = nil
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("failed to roll back transaction: %w", err)
	}
	return nil
}

// InTransaction reports whether a transaction is currently open.
func (u *UnitOfWork) InTransaction() bool {
	return u.tx != nil
}

// exec returns the open transaction if any, the bare connection otherwise.
func (u *UnitOfWork) exec() executor {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
