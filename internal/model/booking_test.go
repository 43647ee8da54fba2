package model

import "testing"

func TestTicketCountsTotal(t *testing.T) {
	cases := []struct {
		name   string
		counts TicketCounts
		want   int
	}{
		{"all zero", TicketCounts{}, 0},
		{"one adult", TicketCounts{Adult: 1}, 15},
		{"one of each", TicketCounts{Adult: 1, Student: 1, Child: 1, Infant: 1}, 32},
		{"mixed", TicketCounts{Adult: 2, Student: 1, Infant: 3}, 46},
		{"family visit", TicketCounts{Adult: 2, Child: 1}, 35},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.counts.Total(); got != tc.want {
				t.Fatalf("Total(%+v) = %d, want %d", tc.counts, got, tc.want)
			}
		})
	}
}

func TestTicketCountsSubtotals(t *testing.T) {
	a, s, c, i := TicketCounts{Adult: 2, Student: 3, Child: 4, Infant: 5}.Subtotals()
	if a != 30 || s != 30 || c != 20 || i != 10 {
		t.Fatalf("Subtotals = %d,%d,%d,%d, want 30,30,20,10", a, s, c, i)
	}
}

func TestTicketCountsIsZero(t *testing.T) {
	if !(TicketCounts{}).IsZero() {
		t.Fatal("zero counts should be IsZero")
	}
	if (TicketCounts{Infant: 1}).IsZero() {
		t.Fatal("one infant should not be IsZero")
	}
}

func TestTicketCountsValid(t *testing.T) {
	if !(TicketCounts{Adult: 1}).Valid() {
		t.Fatal("non-negative counts should be valid")
	}
	if (TicketCounts{Child: -1}).Valid() {
		t.Fatal("negative count should be invalid")
	}
}

func TestAccountIsMember(t *testing.T) {
	if !(Account{Member: MemberJoined}).IsMember() {
		t.Fatal("member flag 1 should report member")
	}
	if (Account{Member: MemberGuest}).IsMember() {
		t.Fatal("member flag 0 should not report member")
	}
}
