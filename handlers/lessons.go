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

func GetLessons(c *fiber.Ctx) error {
	lessons, err := Service.Lessons()
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	lessonsJson, jsonErr := json.MarshalIndent(lessons, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(lessonsJson))
}

type lessonBookingInput struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	SkillLevel      string `json:"skill_level"`
	GroupSize       uint   `json:"group_size"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	SpecialRequests string `json:"special_requests"`
	Source          string `json:"source"`
}

// BookLesson records an instruction reservation. Lessons carry no
// staffing or capacity gate beyond the per-lesson participant maximum,
// so no availability check runs here.
func BookLesson(c *fiber.Ctx) error {
	input := new(lessonBookingInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for lesson parameters: %v", err))
	}

	lesson, err := Service.LessonById(c.Params("lessonId"))
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	if err := dateValidation(input.Date); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if err := groupSizeValidation(input.GroupSize, lesson.MaxParticipants); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if err := customerFieldsValidation(input.CustomerName, input.CustomerEmail, input.CustomerPhone, input.Source); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	customer, err := Service.CreateCustomer(input.CustomerName, input.CustomerEmail, input.CustomerPhone, input.Source)
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}

	reservation, err := Service.CreateReservation(
		customer.Id,
		model.ReservationTypeInstruction,
		input.Date,
		input.Time,
		model.ReservationDetails{
			LessonId:        lesson.Id,
			SkillLevel:      input.SkillLevel,
			GroupSize:       input.GroupSize,
			SpecialRequests: input.SpecialRequests,
		})
	if err != nil {
		return errors.RaiseLedgerError(c, err)
	}
	metrics.ReservationsCreated.WithLabelValues(model.ReservationTypeInstruction).Inc()

	confirmation := bookingConfirmation{
		Reservation: reservation,
		TotalPrice:  ledger.LessonPrice(lesson.Price, input.GroupSize),
	}

	confirmationJson, jsonErr := json.MarshalIndent(confirmation, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(confirmationJson))
}
