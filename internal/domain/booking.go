package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking is a student's viewing appointment.
type Booking struct {
	ID            ID            `json:"id"`
	PropertyID    ID            `json:"propertyId"`
	StudentID     ID            `json:"studentId"`
	StartDateTime string        `json:"startDateTime"`
	Status        BookingStatus `json:"status"`
}

func (b Booking) Start() (time.Time, bool) {
	return ParseTimestamp(b.StartDateTime)
}

// IsUpcoming reports whether the viewing is still ahead of now and has not
// been cancelled. Bookings with an unreadable start time are never upcoming.
func (b Booking) IsUpcoming(now time.Time) bool {
	if b.Status == BookingCancelled {
		return false
	}
	start, ok := b.Start()
	if !ok {
		return false
	}
	return !start.Before(now)
}

// PartitionBookings splits bookings into upcoming and past, keeping order.
func PartitionBookings(bookings []Booking, now time.Time) (upcoming, past []Booking) {
	upcoming = make([]Booking, 0, len(bookings))
	past = make([]Booking, 0)
	for _, b := range bookings {
		if b.IsUpcoming(now) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}
	return upcoming, past
}
