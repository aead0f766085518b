package models

// BookingDates is the payload accepted when rescheduling a booking.
// Only the check-in/check-out pair is replaced; every other field of the
// booking document is left untouched.
type BookingDates struct {
	CheckInDate  string `json:"checkInDate" bson:"checkInDate"`
	CheckOutDate string `json:"checkOutDate" bson:"checkOutDate"`
}
