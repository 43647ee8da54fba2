package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/wildlife-park-booking/internal/model"
)

// BookingStore is the booking access surface handlers depend on.
type BookingStore interface {
	// Create inserts a booking with real ticket counts for an account and
	// returns it with its generated id.
	Create(ctx context.Context, accountID uint64, counts model.TicketCounts) (model.Booking, error)
	// ByAccount lists all bookings belonging to an account, enrolment rows
	// included. Ordering is not significant.
	ByAccount(ctx context.Context, accountID uint64) ([]model.Booking, error)
}

// BookingRepo provides access to the bookings table. Bookings are written
// once and never updated or deleted; the four count columns are NULL on
// enrolment rows and non-NULL on ticket-selection rows.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking carrying real counts. The insert runs in its own
// transaction so the handler never holds an open one across an exit path.
func (r *BookingRepo) Create(ctx context.Context, accountID uint64, counts model.TicketCounts) (model.Booking, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (account_id, adult, student, child, infant) VALUES (?,?,?,?,?)",
		accountID, counts.Adult, counts.Student, counts.Child, counts.Infant)
	if err != nil {
		return model.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	c := counts
	return model.Booking{ID: uint64(id), AccountID: accountID, Counts: &c}, nil
}

// ByAccount returns every booking referencing the account.
func (r *BookingRepo) ByAccount(ctx context.Context, accountID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,account_id,adult,student,child,infant FROM bookings WHERE account_id=?",
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var (
			b                             model.Booking
			adult, student, child, infant sql.NullInt64
		)
		if err := rows.Scan(&b.ID, &b.AccountID, &adult, &student, &child, &infant); err != nil {
			return nil, err
		}
		// All four columns are written together, so one NULL means an
		// enrolment row with no counts at all.
		if adult.Valid {
			b.Counts = &model.TicketCounts{
				Adult:   int(adult.Int64),
				Student: int(student.Int64),
				Child:   int(child.Int64),
				Infant:  int(infant.Int64),
			}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
