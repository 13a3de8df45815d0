package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rental-webapp/config"
	"rental-webapp/model"
)

const dateLayout = "2006-01-02"

// Storage is the named-collection load/save interface the ledger
// operates over. Load fills records from the collection stored under
// key, treating an absent key as an empty collection.
type Storage interface {
	Load(key string, records any) error
	Save(key string, records any) error
}

// Ledger decides whether reservation requests are admissible, records
// customers and reservations, and aggregates simple analytics. It owns
// no state of its own: every operation is a read (or read-modify-write)
// of the injected store. Single-writer use is assumed, concurrent
// callers observing the same snapshot can both be admitted.
type Ledger struct {
	store Storage
	newId func(prefix string) string
	now   func() time.Time
}

func New(store Storage) *Ledger {
	return &Ledger{store: store, newId: NewId, now: time.Now}
}

// NewWithDeps lets tests pin identifier generation and the clock.
func NewWithDeps(store Storage, newId func(prefix string) string, now func() time.Time) *Ledger {
	return &Ledger{store: store, newId: newId, now: now}
}

// NewId returns a collision-resistant identifier carrying a record-kind
// prefix, e.g. "CUS_b5c7...".
func NewId(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// Availability is the outcome of an admission check. Reason is set only
// when Available is false.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CheckAvailability decides whether a reservation request for the given
// date may be accepted. Tours additionally require a staffed guide day.
// The confirmed-reservation count is taken across all items of the
// requested type for that date, not just the requested item; only the
// capacity it is compared against is item-specific.
func (l *Ledger) CheckAvailability(date string, itemType string, itemId string) (Availability, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Availability{}, fmt.Errorf("%w: date %v is not a calendar date", ErrValidation, date)
	}
	if itemType != model.ReservationTypeTour && itemType != model.ReservationTypeRental {
		return Availability{}, fmt.Errorf("%w: unknown item type %v", ErrValidation, itemType)
	}

	reservations := []model.Reservation{}
	if err := l.store.Load(config.RESERVATIONS_KEY, &reservations); err != nil {
		return Availability{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if itemType == model.ReservationTypeTour {
		staffed, err := l.isGuideStaffed(date)
		if err != nil {
			return Availability{}, err
		}
		if !staffed {
			return Availability{Available: false, Reason: "No guide available for this date"}, nil
		}
	}

	confirmedCount := uint(0)
	for _, reservation := range reservations {
		if reservation.Date == date &&
			reservation.Type == itemType &&
			reservation.Status == model.ReservationStatusConfirmed {
			confirmedCount++
		}
	}

	if itemType == model.ReservationTypeTour {
		tour, err := l.TourById(itemId)
		if errors.Is(err, ErrNotFound) {
			return Availability{Available: false, Reason: "item not found"}, nil
		} else if err != nil {
			return Availability{}, err
		}
		if confirmedCount >= tour.Capacity {
			return Availability{Available: false, Reason: "Tour is fully booked"}, nil
		}
	} else {
		rental, err := l.RentalById(itemId)
		if errors.Is(err, ErrNotFound) {
			return Availability{Available: false, Reason: "item not found"}, nil
		} else if err != nil {
			return Availability{}, err
		}
		if confirmedCount >= rental.QuantityAvailable {
			return Availability{Available: false, Reason: "No equipment available for this date"}, nil
		}
	}

	return Availability{Available: true}, nil
}

func (l *Ledger) isGuideStaffed(date string) (bool, error) {
	staffDays := []model.StaffDay{}
	if err := l.store.Load(config.AVAILABILITY_KEY, &staffDays); err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	for _, day := range staffDays {
		if day.Date == date &&
			(day.StaffAvailable == model.StaffBoth || day.StaffAvailable == model.StaffHarry) {
			return true, nil
		}
	}
	return false, nil
}

// CreateCustomer appends a fresh customer record. Repeat submissions
// with the same contact details create distinct records.
func (l *Ledger) CreateCustomer(name string, email string, phone string, source string) (model.Customer, error) {
	customer := model.Customer{
		Id:          l.newId("CUS"),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Source:      source,
		Preferences: []string{},
		DateCreated: l.now().Format(time.RFC3339),
	}

	customers := []model.Customer{}
	if err := l.store.Load(config.CUSTOMERS_KEY, &customers); err != nil {
		return model.Customer{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	customers = append(customers, customer)
	if err := l.store.Save(config.CUSTOMERS_KEY, customers); err != nil {
		return model.Customer{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return customer, nil
}

// CreateReservation records a confirmed reservation. Admissibility is
// not re-checked here, callers are expected to run CheckAvailability
// first.
func (l *Ledger) CreateReservation(customerId string, reservationType string, date string, timeOfDay string, details model.ReservationDetails) (model.Reservation, error) {
	reservation := model.Reservation{
		Id:          l.newId("RES"),
		CustomerId:  customerId,
		Type:        reservationType,
		Date:        date,
		Time:        timeOfDay,
		Details:     details,
		Status:      model.ReservationStatusConfirmed,
		DateCreated: l.now().Format(time.RFC3339),
	}

	reservations := []model.Reservation{}
	if err := l.store.Load(config.RESERVATIONS_KEY, &reservations); err != nil {
		return model.Reservation{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	reservations = append(reservations, reservation)
	if err := l.store.Save(config.RESERVATIONS_KEY, reservations); err != nil {
		return model.Reservation{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return reservation, nil
}

// CancelReservation flips a confirmed reservation to cancelled.
// Cancelled rows stop counting against capacity because every
// admission count filters on the confirmed status.
func (l *Ledger) CancelReservation(reservationId string) (model.Reservation, error) {
	reservations := []model.Reservation{}
	if err := l.store.Load(config.RESERVATIONS_KEY, &reservations); err != nil {
		return model.Reservation{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	for index, reservation := range reservations {
		if reservation.Id != reservationId {
			continue
		}
		if reservation.Status == model.ReservationStatusCanceled {
			return model.Reservation{}, fmt.Errorf("%w: reservation %v is already cancelled", ErrValidation, reservationId)
		}

		reservations[index].Status = model.ReservationStatusCanceled
		if err := l.store.Save(config.RESERVATIONS_KEY, reservations); err != nil {
			return model.Reservation{}, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		return reservations[index], nil
	}

	return model.Reservation{}, fmt.Errorf("%w: no reservation with id %v", ErrNotFound, reservationId)
}

func (l *Ledger) Tours() ([]model.Tour, error) {
	tours := []model.Tour{}
	if err := l.store.Load(config.TOURS_KEY, &tours); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return tours, nil
}

func (l *Ledger) TourById(tourId string) (model.Tour, error) {
	tours, err := l.Tours()
	if err != nil {
		return model.Tour{}, err
	}
	for _, tour := range tours {
		if tour.Id == tourId {
			return tour, nil
		}
	}
	return model.Tour{}, fmt.Errorf("%w: no tour with id %v", ErrNotFound, tourId)
}

func (l *Ledger) Rentals() ([]model.Rental, error) {
	rentals := []model.Rental{}
	if err := l.store.Load(config.RENTALS_KEY, &rentals); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return rentals, nil
}

func (l *Ledger) RentalById(rentalId string) (model.Rental, error) {
	rentals, err := l.Rentals()
	if err != nil {
		return model.Rental{}, err
	}
	for _, rental := range rentals {
		if rental.Id == rentalId {
			return rental, nil
		}
	}
	return model.Rental{}, fmt.Errorf("%w: no rental with id %v", ErrNotFound, rentalId)
}

func (l *Ledger) Lessons() ([]model.Lesson, error) {
	lessons := []model.Lesson{}
	if err := l.store.Load(config.LESSONS_KEY, &lessons); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return lessons, nil
}

func (l *Ledger) LessonById(lessonId string) (model.Lesson, error) {
	lessons, err := l.Lessons()
	if err != nil {
		return model.Lesson{}, err
	}
	for _, lesson := range lessons {
		if lesson.Id == lessonId {
			return lesson, nil
		}
	}
	return model.Lesson{}, fmt.Errorf("%w: no lesson with id %v", ErrNotFound, lessonId)
}
