package ledger

import (
	"fmt"

	"rental-webapp/config"
	"rental-webapp/model"
)

const (
	StatusAvailable   string = "available"
	StatusLimited     string = "limited"
	StatusUnavailable string = "unavailable"
)

// EquipmentStatus classifies how bookable a piece of equipment is for
// the given date. Unlike CheckAvailability it counts only confirmed
// reservations referencing this specific equipment id.
func (l *Ledger) EquipmentStatus(rental model.Rental, date string) (string, error) {
	reservations := []model.Reservation{}
	if err := l.store.Load(config.RESERVATIONS_KEY, &reservations); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	activeCount := uint(0)
	for _, reservation := range reservations {
		if reservation.Type == model.ReservationTypeRental &&
			reservation.Details.RentalId == rental.Id &&
			reservation.Date == date &&
			reservation.Status == model.ReservationStatusConfirmed {
			activeCount++
		}
	}

	remaining := int(rental.QuantityAvailable) - int(activeCount)

	if remaining <= 0 {
		return StatusUnavailable, nil
	} else if remaining <= 2 {
		return StatusLimited, nil
	}
	return StatusAvailable, nil
}
