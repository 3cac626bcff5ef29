package events

import "time"

// Topics.
const (
	TopicListingEvents = "listing.events"
	TopicBookingEvents = "booking.events"
)

// Event types.
const (
	ListingCreated   = "listing.created"
	BookingRequested = "booking.requested"
	BookingConfirmed = "booking.confirmed"
)

// ListingCreatedEvent is published after an admin adds a listing.
type ListingCreatedEvent struct {
	ListingID  string    `json:"listing_id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	PriceLabel string    `json:"price"`
	CreatedBy  string    `json:"created_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingRequestedEvent is published after a user books a date.
type BookingRequestedEvent struct {
	BookingID   string    `json:"booking_id"`
	ListingID   string    `json:"listing_id"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"date"`
	ListingName string    `json:"listing_name"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookingConfirmedEvent is published after an admin confirms a booking.
type BookingConfirmedEvent struct {
	BookingID   string    `json:"booking_id"`
	ListingID   string    `json:"listing_id"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"date"`
	ConfirmedBy string    `json:"confirmed_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
