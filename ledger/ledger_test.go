package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rental-webapp/config"
	"rental-webapp/model"
)

// memStore is an in-memory Storage for tests, collections held as
// marshalled JSON just like the file-backed store.
type memStore struct {
	collections map[string][]byte
	failing     bool
	failOn      string
}

func newMemStore() *memStore {
	return &memStore{collections: map[string][]byte{}}
}

func (s *memStore) Load(key string, records any) error {
	if s.failing || key == s.failOn {
		return errors.New("disk on fire")
	}
	data, ok := s.collections[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(data, records)
}

func (s *memStore) Save(key string, records any) error {
	if s.failing {
		return errors.New("disk on fire")
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	s.collections[key] = data
	return nil
}

func (s *memStore) put(t *testing.T, key string, records any) {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("cannot marshal fixture for %v: %v", key, err)
	}
	s.collections[key] = data
}

func testLedger(store Storage) *Ledger {
	counter := 0
	newId := func(prefix string) string {
		counter++
		return fmt.Sprintf("%v_%04d", prefix, counter)
	}
	now := func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return NewWithDeps(store, newId, now)
}

func sampleTour() model.Tour {
	return model.Tour{Id: "TOUR_sunset", Name: "Sunset Kayak Tour", Capacity: 2, Price: 79.99}
}

func sampleRental() model.Rental {
	return model.Rental{Id: "RENT_kayak", Type: "Kayak - Single", HourlyRate: 25, DailyRate: 80, QuantityAvailable: 2}
}

func confirmedReservation(id string, rtype string, date string, itemId string) model.Reservation {
	details := model.ReservationDetails{}
	switch rtype {
	case model.ReservationTypeTour:
		details.TourId = itemId
	case model.ReservationTypeRental:
		details.RentalId = itemId
	}
	return model.Reservation{
		Id:         id,
		CustomerId: "CUS_x",
		Type:       rtype,
		Date:       date,
		Details:    details,
		Status:     model.ReservationStatusConfirmed,
	}
}

func staffedDay(date string) model.StaffDay {
	return model.StaffDay{Date: date, StaffAvailable: model.StaffBoth}
}

func TestCheckAvailability_TourNeedsGuide(t *testing.T) {
	store := newMemStore()
	store.put(t, config.TOURS_KEY, []model.Tour{sampleTour()})

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_sunset")

	assert.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Equal(t, "No guide available for this date", availability.Reason)
}

func TestCheckAvailability_TourAdmitted(t *testing.T) {
	store := newMemStore()
	store.put(t, config.TOURS_KEY, []model.Tour{sampleTour()})
	store.put(t, config.AVAILABILITY_KEY, []model.StaffDay{staffedDay("2024-06-10")})

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_sunset")

	assert.NoError(t, err)
	assert.True(t, availability.Available)
	assert.Empty(t, availability.Reason)
}

func TestCheckAvailability_HarryAloneStaffsTours(t *testing.T) {
	store := newMemStore()
	store.put(t, config.TOURS_KEY, []model.Tour{sampleTour()})
	store.put(t, config.AVAILABILITY_KEY, []model.StaffDay{
		{Date: "2024-06-10", StaffAvailable: model.StaffHarry}})

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_sunset")

	assert.NoError(t, err)
	assert.True(t, availability.Available)
}

func TestCheckAvailability_StaffTagNoneDoesNotStaff(t *testing.T) {
	store := newMemStore()
	store.put(t, config.TOURS_KEY, []model.Tour{sampleTour()})
	store.put(t, config.AVAILABILITY_KEY, []model.StaffDay{
		{Date: "2024-06-10", StaffAvailable: model.StaffNone}})

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_sunset")

	assert.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Equal(t, "No guide available for this date", availability.Reason)
}

func TestCheckAvailability_TourFullyBooked(t *testing.T) {
	store := newMemStore()
	store.put(t, config.TOURS_KEY, []model.Tour{sampleTour()})
	store.put(t, config.AVAILABILITY_KEY, []model.StaffDay{staffedDay("2024-06-10")})
	store.put(t, config.RESERVATIONS_KEY, []model.Reservation{
		confirmedReservation("RES_1", "tour", "2024-06-10", "TOUR_sunset"),
		confirmedReservation("RES_2", "tour", "2024-06-10", "TOUR_sunset"),
	})

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_sunset")

	assert.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Equal(t, "Tour is fully booked", availability.Reason)
}

// The admission count is global per type for the date: confirmed tour
// reservations on any tour count against the capacity of the
// requested one.
func TestCheckAvailability_CountIsGlobalPerType(t *testing.T) {
	store := newMemStore()
	store.put(t, config.TOURS_KEY, []model.Tour{sampleTour()})
	store.put(t, config.AVAILABILITY_KEY, []model.StaffDay{staffedDay("2024-06-10")})
	store.put(t, config.RESERVATIONS_KEY, []model.Reservation{
		confirmedReservation("RES_1", "tour", "2024-06-10", "TOUR_other"),
		confirmedReservation("RES_2", "tour", "2024-06-10", "TOUR_other"),
	})

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_sunset")

	assert.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Equal(t, "Tour is fully booked", availability.Reason)
}

func TestCheckAvailability_CancelledReservationsFreeCapacity(t *testing.T) {
	canceled := confirmedReservation("RES_1", "tour", "2024-06-10", "TOUR_sunset")
	canceled.Status = model.ReservationStatusCanceled

	store := newMemStore()
	store.put(t, config.TOURS_KEY, []model.Tour{sampleTour()})
	store.put(t, config.AVAILABILITY_KEY, []model.StaffDay{staffedDay("2024-06-10")})
	store.put(t, config.RESERVATIONS_KEY, []model.Reservation{
		canceled,
		confirmedReservation("RES_2", "tour", "2024-06-10", "TOUR_sunset"),
	})

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_sunset")

	assert.NoError(t, err)
	assert.True(t, availability.Available)
}

func TestCheckAvailability_RentalQuantityGate(t *testing.T) {
	store := newMemStore()
	store.put(t, config.RENTALS_KEY, []model.Rental{sampleRental()})
	store.put(t, config.RESERVATIONS_KEY, []model.Reservation{
		confirmedReservation("RES_1", "rental", "2024-06-10", "RENT_kayak"),
	})

	l := testLedger(store)

	availability, err := l.CheckAvailability("2024-06-10", "rental", "RENT_kayak")
	assert.NoError(t, err)
	assert.True(t, availability.Available, "one of two units taken, still admissible")

	store.put(t, config.RESERVATIONS_KEY, []model.Reservation{
		confirmedReservation("RES_1", "rental", "2024-06-10", "RENT_kayak"),
		confirmedReservation("RES_2", "rental", "2024-06-10", "RENT_kayak"),
	})

	availability, err = l.CheckAvailability("2024-06-10", "rental", "RENT_kayak")
	assert.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Equal(t, "No equipment available for this date", availability.Reason)
}

func TestCheckAvailability_OtherDatesDoNotCount(t *testing.T) {
	store := newMemStore()
	store.put(t, config.RENTALS_KEY, []model.Rental{sampleRental()})
	store.put(t, config.RESERVATIONS_KEY, []model.Reservation{
		confirmedReservation("RES_1", "rental", "2024-06-09", "RENT_kayak"),
		confirmedReservation("RES_2", "rental", "2024-06-09", "RENT_kayak"),
	})

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "rental", "RENT_kayak")

	assert.NoError(t, err)
	assert.True(t, availability.Available)
}

func TestCheckAvailability_UnknownItem(t *testing.T) {
	store := newMemStore()
	store.put(t, config.AVAILABILITY_KEY, []model.StaffDay{staffedDay("2024-06-10")})

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_missing")

	assert.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Equal(t, "item not found", availability.Reason)
}

func TestCheckAvailability_InputValidation(t *testing.T) {
	l := testLedger(newMemStore())

	_, err := l.CheckAvailability("next tuesday", "tour", "TOUR_sunset")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = l.CheckAvailability("2024-06-10", "spacewalk", "TOUR_sunset")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckAvailability_StorageFailure(t *testing.T) {
	store := newMemStore()
	store.failing = true

	_, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_sunset")
	assert.ErrorIs(t, err, ErrStorage)
}

// A corrupt catalog collection is a storage failure, not a missing
// item.
func TestCheckAvailability_CatalogStorageFailureSurfaces(t *testing.T) {
	store := newMemStore()
	store.put(t, config.AVAILABILITY_KEY, []model.StaffDay{staffedDay("2024-06-10")})
	store.failOn = config.TOURS_KEY

	availability, err := testLedger(store).CheckAvailability("2024-06-10", "tour", "TOUR_sunset")
	assert.ErrorIs(t, err, ErrStorage)
	assert.False(t, availability.Available)
	assert.NotEqual(t, "item not found", availability.Reason)

	rentalStore := newMemStore()
	rentalStore.failOn = config.RENTALS_KEY

	_, err = testLedger(rentalStore).CheckAvailability("2024-06-10", "rental", "RENT_kayak")
	assert.ErrorIs(t, err, ErrStorage)
}

func TestCreateCustomer_NoDeduplication(t *testing.T) {
	store := newMemStore()
	l := testLedger(store)

	first, err := l.CreateCustomer("Jane Doe", "jane@example.com", "555-0100", "instagram")
	assert.NoError(t, err)
	second, err := l.CreateCustomer("Jane Doe", "jane@example.com", "555-0100", "instagram")
	assert.NoError(t, err)

	assert.NotEqual(t, first.Id, second.Id)

	customers := []model.Customer{}
	assert.NoError(t, store.Load(config.CUSTOMERS_KEY, &customers))
	assert.Len(t, customers, 2)
}

func TestCreateReservation_PersistsConfirmed(t *testing.T) {
	store := newMemStore()
	l := testLedger(store)

	reservation, err := l.CreateReservation("CUS_0001", "tour", "2024-06-10", "18:00",
		model.ReservationDetails{TourId: "TOUR_sunset", GroupSize: 3})
	assert.NoError(t, err)
	assert.Equal(t, model.ReservationStatusConfirmed, reservation.Status)
	assert.Equal(t, "2024-06-01T12:00:00Z", reservation.DateCreated)

	another, err := l.CreateReservation("CUS_0001", "tour", "2024-06-10", "18:00",
		model.ReservationDetails{TourId: "TOUR_sunset", GroupSize: 1})
	assert.NoError(t, err)
	assert.NotEqual(t, reservation.Id, another.Id)

	reservations := []model.Reservation{}
	assert.NoError(t, store.Load(config.RESERVATIONS_KEY, &reservations))
	assert.Len(t, reservations, 2)
	assert.Equal(t, reservation.Id, reservations[0].Id)
}

func TestCancelReservation(t *testing.T) {
	store := newMemStore()
	store.put(t, config.RESERVATIONS_KEY, []model.Reservation{
		confirmedReservation("RES_1", "rental", "2024-06-10", "RENT_kayak"),
	})
	l := testLedger(store)

	canceled, err := l.CancelReservation("RES_1")
	assert.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCanceled, canceled.Status)

	_, err = l.CancelReservation("RES_1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = l.CancelReservation("RES_unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupHelpers(t *testing.T) {
	store := newMemStore()
	store.put(t, config.TOURS_KEY, []model.Tour{sampleTour()})
	store.put(t, config.RENTALS_KEY, []model.Rental{sampleRental()})
	l := testLedger(store)

	tour, err := l.TourById("TOUR_sunset")
	assert.NoError(t, err)
	assert.Equal(t, "Sunset Kayak Tour", tour.Name)

	_, err = l.RentalById("RENT_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.LessonById("LES_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
