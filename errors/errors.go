package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"rental-webapp/ledger"
)

func RaiseError(context *fiber.Ctx, status int, message string, data string) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaisePermissionsError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusUnauthorized, "lack of permissions", data)
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}

// RaiseLedgerError maps a ledger error kind to the matching HTTP
// response.
func RaiseLedgerError(context *fiber.Ctx, err error) error {
	switch {
	case stderrors.Is(err, ledger.ErrValidation):
		return RaiseBadRequestError(context, err.Error())
	case stderrors.Is(err, ledger.ErrNotFound):
		return RaiseNotFoundError(context, err.Error())
	default:
		return RaiseInternalServerError(context, err.Error())
	}
}
