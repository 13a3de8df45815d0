package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rental-webapp/database"
	"rental-webapp/errors"
	"rental-webapp/ledger"
	"rental-webapp/model"
)

// Portal handlers wrap the hosted backend: the signed-in client's
// booking history and the admin catalog/inquiry management live there,
// not in the local ledger.

func GetRemoteTours(c *fiber.Ctx) error {
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)

	var tours []model.Tour
	var err error

	if c.Query("duration") != "" || c.Query("difficulty") != "" || maxPrice > 0 {
		tours, err = database.FilterRemoteTours(c.Query("duration"), c.Query("difficulty"), maxPrice)
	} else {
		tours, err = database.GetRemoteTours()
	}
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	toursJson, jsonErr := json.MarshalIndent(tours, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(toursJson))
}

func CreateRemoteTour(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	tour := new(model.Tour)
	if err := c.BodyParser(tour); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable tour parameters: %v", err))
	}
	tour.Name = strings.TrimSpace(tour.Name)
	if len(tour.Name) < 2 {
		return errors.RaiseBadRequestError(c, "tour name is too short")
	}
	if tour.Price < 0 {
		return errors.RaiseBadRequestError(c, "tour price cannot be negative")
	}
	if tour.Id == "" {
		tour.Id = ledger.NewId("TOUR")
	}

	if err := database.CreateRemoteTour(*tour); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	tourJson, jsonErr := json.MarshalIndent(tour, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(tourJson))
}

func UpdateRemoteTour(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	tour := new(model.Tour)
	if err := c.BodyParser(tour); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable tour parameters: %v", err))
	}
	tour.Id = c.Params("tourId")
	if tour.Price < 0 {
		return errors.RaiseBadRequestError(c, "tour price cannot be negative")
	}

	if err := database.UpdateRemoteTour(*tour); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "tour updated", "data": tour.Id})
}

func DeleteRemoteTour(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	if err := database.DeleteRemoteTour(c.Params("tourId")); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("tour with id %v was deleted", c.Params("tourId"))})
}

// GetRemoteEquipment lists the hosted equipment catalog, narrowed to
// currently bookable units with ?availability=available.
func GetRemoteEquipment(c *fiber.Ctx) error {
	equipment, err := database.GetRemoteEquipment(c.Query("availability") == "available")
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	equipmentJson, jsonErr := json.MarshalIndent(equipment, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(equipmentJson))
}

func CreateRemoteRental(c *fiber.Ctx) error {
	type RentalInput struct {
		EquipmentId   string `json:"equipment_id"`
		StartDate     string `json:"start_date"`
		EndDate       string `json:"end_date"`
		DurationHours uint   `json:"duration_hours"`
	}

	input := new(RentalInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for rental parameters: %v", err))
	}
	if err := dateValidation(input.StartDate); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if input.EndDate != "" {
		if err := dateValidation(input.EndDate); err != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprint(err))
		}
	}
	if input.DurationHours == 0 {
		return errors.RaiseBadRequestError(c, "rental duration must be at least 1 hour")
	}

	equipmentList, err := database.GetRemoteEquipment(false)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}
	var equipment *model.Rental
	for index := range equipmentList {
		if equipmentList[index].Id == input.EquipmentId {
			equipment = &equipmentList[index]
			break
		}
	}
	if equipment == nil {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("equipment %v not found", input.EquipmentId))
	}
	if equipment.Availability == "rented" {
		return errors.RaiseError(c, fiber.StatusConflict, "rental rejected", "equipment is already rented")
	}

	rental := model.EquipmentRental{
		Id:            primitive.NewObjectID(),
		UserId:        identityLogin(c),
		EquipmentId:   equipment.Id,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		DurationHours: input.DurationHours,
		TotalPrice:    ledger.RentalPrice(input.DurationHours, equipment.HourlyRate, equipment.DailyRate, 1),
		Status:        model.BookingStatusPending,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}

	if err := database.CreateEquipmentRental(rental); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	rentalJson, jsonErr := json.MarshalIndent(rental, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(rentalJson))
}

func GetMyBookings(c *fiber.Ctx) error {
	bookings, err := database.GetUserBookings(identityLogin(c))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	bookingsJson, jsonErr := json.MarshalIndent(bookings, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingsJson))
}

func GetMyRentals(c *fiber.Ctx) error {
	rentals, err := database.GetUserRentals(identityLogin(c))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	rentalsJson, jsonErr := json.MarshalIndent(rentals, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(rentalsJson))
}

func CreateRemoteBooking(c *fiber.Ctx) error {
	type BookingInput struct {
		TourId       string `json:"tour_id"`
		Date         string `json:"date"`
		Participants uint   `json:"participants"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for booking parameters: %v", err))
	}
	if err := dateValidation(input.Date); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if input.Participants == 0 {
		return errors.RaiseBadRequestError(c, "participants must be at least 1")
	}

	tours, err := database.GetRemoteTours()
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}
	var tour *model.Tour
	for index := range tours {
		if tours[index].Id == input.TourId {
			tour = &tours[index]
			break
		}
	}
	if tour == nil {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("tour %v not found", input.TourId))
	}

	booking := model.TourBooking{
		Id:           primitive.NewObjectID(),
		UserId:       identityLogin(c),
		TourId:       tour.Id,
		Date:         input.Date,
		Participants: input.Participants,
		TotalPrice:   ledger.TourPrice(tour.Price, input.Participants),
		Status:       model.BookingStatusPending,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}

	if err := database.CreateTourBooking(booking); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	bookingJson, jsonErr := json.MarshalIndent(booking, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingJson))
}

func CancelRemoteBooking(c *fiber.Ctx) error {
	bookingId, idErr := primitive.ObjectIDFromHex(c.Params("bookingId"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed booking id: %v", idErr))
	}

	if err := database.CancelTourBooking(bookingId); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "booking cancelled", "data": c.Params("bookingId")})
}

func CancelRemoteRental(c *fiber.Ctx) error {
	rentalId, idErr := primitive.ObjectIDFromHex(c.Params("rentalId"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed rental id: %v", idErr))
	}

	if err := database.CancelEquipmentRental(rentalId, c.Query("equipment_id")); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "rental cancelled", "data": c.Params("rentalId")})
}
