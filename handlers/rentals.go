package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"rental-webapp/errors"
	"rental-webapp/ledger"
	"rental-webapp/metrics"
	"rental-webapp/model"
)

type rentalListing struct {
	model.Rental
	Status string `json:"status"`
}

// GetRentals lists the equipment catalog with today's availability
// classification attached to each item.
func GetRentals(c *fiber.Ctx) error {
	rentals, err := Service.Rentals()
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	today := time.Now().Format("2006-01-02")
	listings := make([]rentalListing, 0, len(rentals))
	for _, rental := range rentals {
		status, statusErr := Service.EquipmentStatus(rental, today)
		if statusErr != nil {
			return errors.RaiseLedgerError(c, statusErr)
		}
		listings = append(listings, rentalListing{Rental: rental, Status: status})
	}

	listingsJson, jsonErr := json.MarshalIndent(listings, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(listingsJson))
}

type rentalReservationInput struct {
	Date            string `json:"date"`
	PickupTime      string `json:"pickup_time"`
	DurationHours   uint   `json:"duration_hours"`
	Quantity        uint   `json:"quantity"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	SpecialRequests string `json:"special_requests"`
	Source          string `json:"source"`
}

func ReserveRental(c *fiber.Ctx) error {
	input := new(rentalReservationInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for rental parameters: %v", err))
	}

	rental, err := Service.RentalById(c.Params("rentalId"))
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	if err := dateValidation(input.Date); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if input.DurationHours == 0 {
		return errors.RaiseBadRequestError(c, "rental duration must be at least 1 hour")
	}
	if input.Quantity == 0 || input.Quantity > rental.QuantityAvailable {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("quantity must be between 1 and %v", rental.QuantityAvailable))
	}
	if err := customerFieldsValidation(input.CustomerName, input.CustomerEmail, input.CustomerPhone, input.Source); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	availability, err := Service.CheckAvailability(input.Date, model.ReservationTypeRental, rental.Id)
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}
	metrics.AvailabilityChecks.WithLabelValues(model.ReservationTypeRental, metrics.Outcome(availability.Available)).Inc()
	if !availability.Available {
		return errors.RaiseError(c, fiber.StatusConflict, "reservation rejected", availability.Reason)
	}

	customer, err := Service.CreateCustomer(input.CustomerName, input.CustomerEmail, input.CustomerPhone, input.Source)
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	reservation, err := Service.CreateReservation(
		customer.Id,
		model.ReservationTypeRental,
		input.Date,
		input.PickupTime,
		model.ReservationDetails{
			RentalId:        rental.Id,
			DurationHours:   input.DurationHours,
			Quantity:        input.Quantity,
			SpecialRequests: input.SpecialRequests,
		})
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}
	metrics.ReservationsCreated.WithLabelValues(model.ReservationTypeRental).Inc()

	confirmation := bookingConfirmation{
		Reservation: reservation,
		TotalPrice:  ledger.RentalPrice(input.DurationHours, rental.HourlyRate, rental.DailyRate, input.Quantity),
	}

	confirmationJson, jsonErr := json.MarshalIndent(confirmation, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(confirmationJson))
}
