package model

// Per-category ticket prices.  The currency unit is whatever the park
// charges in; only the ratios and sums matter to this application.
const (
	PriceAdult   = 15
	PriceStudent = 10
	PriceChild   = 5
	PriceInfant  = 2
)

// TicketCounts holds the number of tickets requested per category.  It is
// persisted on bookings and carried transiently in the session between the
// ticket-selection step and the payment summary.
type TicketCounts struct {
	Adult   int `json:"adult"`
	Student int `json:"student"`
	Child   int `json:"child"`
	Infant  int `json:"infant"`
}

// IsZero reports whether no ticket was selected in any category.
func (t TicketCounts) IsZero() bool {
	return t.Adult == 0 && t.Student == 0 && t.Child == 0 && t.Infant == 0
}

// Valid reports whether every count is non-negative.
func (t TicketCounts) Valid() bool {
	return t.Adult >= 0 && t.Student >= 0 && t.Child >= 0 && t.Infant >= 0
}

// Subtotals returns the per-category cost (count times unit price) in the
// order adult, student, child, infant.
func (t TicketCounts) Subtotals() (adult, student, child, infant int) {
	return t.Adult * PriceAdult, t.Student * PriceStudent, t.Child * PriceChild, t.Infant * PriceInfant
}

// Total returns the full price of the selection: adult×15 + student×10 +
// child×5 + infant×2.
func (t TicketCounts) Total() int {
	a, s, c, i := t.Subtotals()
	return a + s + c + i
}

// Booking represents a row of the `bookings` table.  Every booking belongs
// to exactly one account.
//
// Counts is nil for the enrolment booking written at signup, where the four
// count columns are left NULL; it is non-nil for bookings created from the
// ticket-selection form.
//
// Fields:
//  ID        – primary key identifier.
//  AccountID – owning account (bookings.account_id).
//  Counts    – ticket counts, nil when unset.
type Booking struct {
	ID        uint64        // bookings.id
	AccountID uint64        // bookings.account_id
	Counts    *TicketCounts // bookings.adult/student/child/infant
}
