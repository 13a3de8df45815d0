package model

const (
	ReservationTypeTour        string = "tour"
	ReservationTypeRental      string = "rental"
	ReservationTypeInstruction string = "instruction"
)

const (
	ReservationStatusConfirmed string = "confirmed"
	ReservationStatusCanceled  string = "cancelled"
)

// ReservationDetails is the type-specific payload of a reservation.
// TourId/GroupSize are set for tours, RentalId/Duration/Quantity for
// rentals, LessonId/SkillLevel/GroupSize for instruction bookings.
type ReservationDetails struct {
	TourId          string `json:"tour_id,omitempty"`
	RentalId        string `json:"rental_id,omitempty"`
	LessonId        string `json:"lesson_id,omitempty"`
	GroupSize       uint   `json:"group_size,omitempty"`
	Quantity        uint   `json:"quantity,omitempty"`
	DurationHours   uint   `json:"duration_hours,omitempty"`
	SkillLevel      string `json:"skill_level,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type Reservation struct {
	Id          string             `json:"id"`
	CustomerId  string             `json:"customer_id"`
	Type        string             `json:"type"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Details     ReservationDetails `json:"details"`
	Status      string             `json:"status"`
	DateCreated string             `json:"date_created"`
}
