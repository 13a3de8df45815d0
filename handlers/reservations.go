package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"rental-webapp/errors"
	"rental-webapp/metrics"
)

func CancelReservation(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	reservation, err := Service.CancelReservation(c.Params("reservationId"))
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}
	metrics.ReservationsCanceled.Inc()

	reservationJson, jsonErr := json.MarshalIndent(reservation, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(reservationJson))
}

func GetAnalytics(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	analytics, err := Service.GenerateAnalytics()
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	analyticsJson, jsonErr := json.MarshalIndent(analytics, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(analyticsJson))
}
