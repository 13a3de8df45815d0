package ledger

// TourPrice is the tour unit price times the group size.
func TourPrice(unitPrice float64, groupSize uint) float64 {
	return unitPrice * float64(groupSize)
}

// RentalPrice charges the daily rate once per unit for rentals of eight
// hours or more, otherwise the hourly rate per unit per hour.
func RentalPrice(durationHours uint, hourlyRate float64, dailyRate float64, quantity uint) float64 {
	if durationHours >= 8 {
		return dailyRate * float64(quantity)
	}
	return hourlyRate * float64(quantity) * float64(durationHours)
}

// LessonPrice is the lesson unit price times the group size.
func LessonPrice(unitPrice float64, groupSize uint) float64 {
	return unitPrice * float64(groupSize)
}
