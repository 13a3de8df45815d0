package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"rental-webapp/errors"
	"rental-webapp/ledger"
	"rental-webapp/metrics"
	"rental-webapp/model"
)

func GetTours(c *fiber.Ctx) error {
	tours, err := Service.Tours()
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	toursJson, jsonErr := json.MarshalIndent(tours, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(toursJson))
}

func GetTour(c *fiber.Ctx) error {
	tour, err := Service.TourById(c.Params("tourId"))
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	tourJson, jsonErr := json.MarshalIndent(tour, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(tourJson))
}

// GetTourAvailability probes admissibility for a date without creating
// anything: GET /tour/:tourId/availability?date=YYYY-MM-DD.
func GetTourAvailability(c *fiber.Ctx) error {
	availability, err := Service.CheckAvailability(c.Query("date"), model.ReservationTypeTour, c.Params("tourId"))
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	metrics.AvailabilityChecks.WithLabelValues(model.ReservationTypeTour, metrics.Outcome(availability.Available)).Inc()

	return c.JSON(fiber.Map{"status": "success", "message": "availability checked", "data": availability})
}

type tourBookingInput struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	GroupSize       uint   `json:"group_size"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	SpecialRequests string `json:"special_requests"`
	Source          string `json:"source"`
}

type bookingConfirmation struct {
	Reservation model.Reservation `json:"reservation"`
	TotalPrice  float64           `json:"total_price"`
}

func BookTour(c *fiber.Ctx) error {
	input := new(tourBookingInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for booking parameters: %v", err))
	}

	tour, err := Service.TourById(c.Params("tourId"))
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	if err := dateValidation(input.Date); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if err := groupSizeValidation(input.GroupSize, tour.Capacity); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if err := customerFieldsValidation(input.CustomerName, input.CustomerEmail, input.CustomerPhone, input.Source); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	availability, err := Service.CheckAvailability(input.Date, model.ReservationTypeTour, tour.Id)
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}
	metrics.AvailabilityChecks.WithLabelValues(model.ReservationTypeTour, metrics.Outcome(availability.Available)).Inc()
	if !availability.Available {
		return errors.RaiseError(c, fiber.StatusConflict, "booking rejected", availability.Reason)
	}

	customer, err := Service.CreateCustomer(input.CustomerName, input.CustomerEmail, input.CustomerPhone, input.Source)
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	reservation, err := Service.CreateReservation(
		customer.Id,
		model.ReservationTypeTour,
		input.Date,
		input.Time,
		model.ReservationDetails{
			TourId:          tour.Id,
			GroupSize:       input.GroupSize,
			SpecialRequests: input.SpecialRequests,
		})
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}
	metrics.ReservationsCreated.WithLabelValues(model.ReservationTypeTour).Inc()

	confirmation := bookingConfirmation{
		Reservation: reservation,
		TotalPrice:  ledger.TourPrice(tour.Price, input.GroupSize),
	}

	confirmationJson, jsonErr := json.MarshalIndent(confirmation, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(confirmationJson))
}
