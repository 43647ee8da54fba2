package model

// Membership flag values stored in accounts.member.  A joined member paid
// for a membership during signup; a guest only booked a visit.
const (
	MemberJoined = 1
	MemberGuest  = 0
)

// Account represents a row of the `accounts` table.  The login is unique
// across all accounts and doubles as the email address entered on the
// signup forms.
//
// The password is stored and compared in plain text.  This mirrors the
// behavior of the site being replaced and is a documented weakness, not
// something handlers may rely on hashing for.
//
// Fields:
//  ID       – primary key identifier of the account.
//  Login    – unique login name (email address).
//  Password – plain-text password as entered at first signup.
//  Member   – MemberJoined or MemberGuest.
type Account struct {
	ID       uint64 // accounts.id
	Login    string // accounts.login
	Password string // accounts.password
	Member   int    // accounts.member
}

// IsMember reports whether the account joined as a member.
func (a Account) IsMember() bool { return a.Member == MemberJoined }
