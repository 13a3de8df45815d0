package ledger

import (
	"fmt"

	"rental-webapp/config"
	"rental-webapp/model"
)

type Analytics struct {
	TotalCustomers        int            `json:"total_customers"`
	TotalReservations     int            `json:"total_reservations"`
	CanceledReservations  int            `json:"cancelled_reservations"`
	ReservationsByType    map[string]int `json:"reservations_by_type"`
	CustomerSources       map[string]int `json:"customer_sources"`
}

// GenerateAnalytics aggregates over the full collections. Reservations
// count toward the type breakdown regardless of status; the cancelled
// total is reported alongside so the numbers stay interpretable.
func (l *Ledger) GenerateAnalytics() (Analytics, error) {
	reservations := []model.Reservation{}
	if err := l.store.Load(config.RESERVATIONS_KEY, &reservations); err != nil {
		return Analytics{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	customers := []model.Customer{}
	if err := l.store.Load(config.CUSTOMERS_KEY, &customers); err != nil {
		return Analytics{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	analytics := Analytics{
		TotalCustomers:     len(customers),
		TotalReservations:  len(reservations),
		ReservationsByType: map[string]int{},
		CustomerSources:    map[string]int{},
	}

	for _, reservation := range reservations {
		analytics.ReservationsByType[reservation.Type]++
		if reservation.Status == model.ReservationStatusCanceled {
			analytics.CanceledReservations++
		}
	}
	for _, customer := range customers {
		analytics.CustomerSources[customer.Source]++
	}

	return analytics, nil
}
