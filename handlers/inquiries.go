package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rental-webapp/database"
	"rental-webapp/errors"
	"rental-webapp/model"
)

func SubmitInquiry(c *fiber.Ctx) error {
	inquiry := new(model.Inquiry)
	if err := c.BodyParser(inquiry); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for inquiry parameters: %v", err))
	}

	if err := customerNameValidation(inquiry.Name); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if err := emailValidation(inquiry.Email); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if len(inquiry.Message) == 0 {
		return errors.RaiseBadRequestError(c, "message is required")
	}

	inquiry.Id = primitive.NewObjectID()
	inquiry.Status = model.InquiryStatusNew
	inquiry.CreatedAt = time.Now().Format(time.RFC3339)

	if err := database.SubmitInquiry(*inquiry); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "inquiry submitted", "data": inquiry.Id.Hex()})
}

func GetInquiries(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	inquiries, err := database.GetAllInquiries()
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	inquiriesJson, jsonErr := json.MarshalIndent(inquiries, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(inquiriesJson))
}

func UpdateInquiryStatus(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	type StatusChange struct {
		Status string `json:"status"`
	}

	change := new(StatusChange)
	if err := c.BodyParser(change); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input: %v", err))
	}
	if change.Status != model.InquiryStatusNew &&
		change.Status != model.InquiryStatusAnswered &&
		change.Status != model.InquiryStatusClosed {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown inquiry status %v", change.Status))
	}

	inquiryId, idErr := primitive.ObjectIDFromHex(c.Params("inquiryId"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed inquiry id: %v", idErr))
	}

	if err := database.UpdateInquiryStatus(inquiryId, change.Status); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "inquiry status updated", "data": change.Status})
}
