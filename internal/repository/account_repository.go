package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/wildlife-park-booking/internal/model"
)

// AccountStore is the account access surface handlers depend on. The SQL
// implementation below is the production one; tests substitute in-memory
// fakes.
type AccountStore interface {
	// Signup finds the account with the given login or creates it with the
	// given password and membership flag, and records the enrolment booking
	// against it, all inside one transaction. When the login already exists
	// the stored password and member flag are left untouched.
	Signup(ctx context.Context, login, password string, member int) (model.Account, error)
	// ByLogin fetches an account by its exact login. Returns ErrNotFound
	// when no such account exists.
	ByLogin(ctx context.Context, login string) (model.Account, error)
	// ByID fetches an account by id. Returns ErrNotFound when absent.
	ByID(ctx context.Context, id uint64) (model.Account, error)
}

type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Signup implements the find-or-create signup step. The enrolment booking
// row (all counts NULL) is written in the same transaction, matching the
// site's historical behavior of one booking record per completed signup.
// Logins are stored exactly as entered; "A@X.com" and "a@x.com" are two
// different accounts (the login column carries a binary collation to
// match).
func (r *AccountRepo) Signup(ctx context.Context, login, password string, member int) (model.Account, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Account{}, err
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	a, err := accountByLoginTx(ctx, tx, login)
	switch {
	case err == nil:
		// Existing account: password and member flag stay as first stored.
	case errors.Is(err, ErrNotFound):
		a, err = createAccountTx(ctx, tx, login, password, member)
		if errors.Is(err, ErrLoginExists) {
			// Lost a race with a concurrent signup for the same login.
			a, err = accountByLoginTx(ctx, tx, login)
		}
		if err != nil {
			return model.Account{}, err
		}
	default:
		return model.Account{}, err
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (account_id) VALUES (?)", a.ID); err != nil {
		return model.Account{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Account{}, err
	}
	return a, nil
}

func createAccountTx(ctx context.Context, tx *sql.Tx, login, password string, member int) (model.Account, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO accounts (login, password, member) VALUES (?,?,?)",
		login, password, member)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Account{}, ErrLoginExists
		}
		return model.Account{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Account{}, err
	}
	return model.Account{ID: uint64(id), Login: login, Password: password, Member: member}, nil
}

func accountByLoginTx(ctx context.Context, tx *sql.Tx, login string) (model.Account, error) {
	var a model.Account
	err := tx.QueryRowContext(ctx,
		"SELECT id,login,password,member FROM accounts WHERE login=? LIMIT 1",
		login).Scan(&a.ID, &a.Login, &a.Password, &a.Member)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrNotFound
	}
	return a, err
}

// ByLogin fetches an account by its exact, case-sensitive login.
func (r *AccountRepo) ByLogin(ctx context.Context, login string) (model.Account, error) {
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,login,password,member FROM accounts WHERE login=? LIMIT 1",
		login).Scan(&a.ID, &a.Login, &a.Password, &a.Member)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrNotFound
	}
	return a, err
}

// ByID fetches an account by id.
func (r *AccountRepo) ByID(ctx context.Context, id uint64) (model.Account, error) {
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,login,password,member FROM accounts WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Login, &a.Password, &a.Member)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrNotFound
	}
	return a, err
}
