// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a ticket-selection booking is
// written. It contains enough information for downstream consumers to log,
// notify, or feed analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID uint64 `json:"booking_id"`
	AccountID uint64 `json:"account_id"`
	Login     string `json:"login"`
	Member    int    `json:"member"`
	Adult     int    `json:"adult"`
	Student   int    `json:"student"`
	Child     int    `json:"child"`
	Infant    int    `json:"infant"`
	Total     int    `json:"total"`
	CreatedAt string `json:"created_at"`
}
