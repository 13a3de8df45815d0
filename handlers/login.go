package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"rental-webapp/config"
	"rental-webapp/database"
	"rental-webapp/errors"
	"rental-webapp/model"
)

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

func Login(c *fiber.Ctx) error {
	type Credentials struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	var creds = new(Credentials)

	if err := c.BodyParser(&creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}

	user, geterr := database.GetUserData(creds.Login)
	if geterr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", geterr))
	}

	if !isPasswordHashCorrect(user.HashedPassword, creds.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid password",
			"data":    nil})
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = user.Login
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()
	claims["role"] = user.Role

	sign, enverr := config.GetSecret("SIGN")
	if enverr != nil {
		log.Print(enverr)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	t, err := token.SignedString([]byte(sign))
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}

func Register(c *fiber.Ctx) error {
	type Registration struct {
		Login    string `json:"login"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}

	var reg = new(Registration)

	if err := c.BodyParser(&reg); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse registration input: %v", err))
	}

	if err := emailValidation(reg.Login); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}
	if len(reg.Password) < 8 {
		return errors.RaiseBadRequestError(c, "password must be at least 8 characters")
	}

	existing, geterr := database.GetUserData(reg.Login)
	if geterr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", geterr))
	}
	if existing.Login == reg.Login {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("user %v already exists", reg.Login))
	}

	hash, hasherr := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if hasherr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot hash password: %v", hasherr))
	}

	user := model.UserData{
		Id:             primitive.NewObjectID(),
		Login:          reg.Login,
		FullName:       reg.FullName,
		HashedPassword: string(hash),
		Role:           "client",
		CreatedAt:      time.Now().Format(time.RFC3339),
	}

	if err := database.CreateUser(user); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "user registered", "data": user.Login})
}

func UpdatePassword(c *fiber.Ctx) error {
	type PasswordChange struct {
		Password string `json:"password"`
	}

	var change = new(PasswordChange)

	if err := c.BodyParser(&change); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse input: %v", err))
	}
	if len(change.Password) < 8 {
		return errors.RaiseBadRequestError(c, "password must be at least 8 characters")
	}

	hash, hasherr := bcrypt.GenerateFromPassword([]byte(change.Password), bcrypt.DefaultCost)
	if hasherr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot hash password: %v", hasherr))
	}

	if err := database.UpdateUserPassword(identityLogin(c), string(hash)); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("%v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "password updated", "data": nil})
}
