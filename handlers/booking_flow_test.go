package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"rental-webapp/config"
	"rental-webapp/handlers"
	"rental-webapp/ledger"
	"rental-webapp/localstore"
	"rental-webapp/model"
	"rental-webapp/router"
)

func setupApp(t *testing.T) (*fiber.App, *localstore.Store) {
	t.Helper()
	t.Setenv("SIGN", "test-signing-key")

	store, err := localstore.New(t.TempDir())
	assert.NoError(t, err)
	assert.NoError(t, localstore.SeedIfEmpty(store))
	assert.NoError(t, store.Save(config.AVAILABILITY_KEY, []model.StaffDay{
		{Date: "2030-07-15", StaffAvailable: model.StaffBoth}}))

	handlers.Setup(ledger.New(store))

	app := fiber.New()
	router.SetupRoutes(app)
	return app, store
}

func postJson(t *testing.T, app *fiber.App, route string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req, _ := http.NewRequest("POST", route, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	return res
}

func validTourBooking() map[string]any {
	return map[string]any{
		"date":           "2030-07-15",
		"time":           "18:00",
		"group_size":     3,
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		"customer_phone": "555-0100",
		"source":         "instagram",
	}
}

func TestGetTourCatalog(t *testing.T) {
	app, _ := setupApp(t)

	req, _ := http.NewRequest("GET", "/tour/", nil)
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	tours := []model.Tour{}
	assert.NoError(t, json.Unmarshal(body, &tours))
	assert.Len(t, tours, 2)
}

func TestBookTour_Confirmed(t *testing.T) {
	app, store := setupApp(t)

	res := postJson(t, app, "/tour/TOUR_sunset-kayak/book", validTourBooking())
	assert.Equal(t, 200, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	confirmation := struct {
		Reservation model.Reservation `json:"reservation"`
		TotalPrice  float64           `json:"total_price"`
	}{}
	assert.NoError(t, json.Unmarshal(body, &confirmation))
	assert.Equal(t, model.ReservationStatusConfirmed, confirmation.Reservation.Status)
	assert.InDelta(t, 239.97, confirmation.TotalPrice, 0.001)

	reservations := []model.Reservation{}
	assert.NoError(t, store.Load(config.RESERVATIONS_KEY, &reservations))
	assert.Len(t, reservations, 1)

	customers := []model.Customer{}
	assert.NoError(t, store.Load(config.CUSTOMERS_KEY, &customers))
	assert.Len(t, customers, 1)
	assert.Equal(t, customers[0].Id, reservations[0].CustomerId)
}

func TestBookTour_NoGuideOnDate(t *testing.T) {
	app, _ := setupApp(t)

	booking := validTourBooking()
	booking["date"] = "2030-07-16"

	res := postJson(t, app, "/tour/TOUR_sunset-kayak/book", booking)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "No guide available for this date")
}

func TestBookTour_ValidationErrors(t *testing.T) {
	app, _ := setupApp(t)

	tests := []struct {
		description string
		mutate      func(map[string]any)
	}{
		{"bad email", func(b map[string]any) { b["customer_email"] = "not-an-email" }},
		{"short name", func(b map[string]any) { b["customer_name"] = "J" }},
		{"bad date", func(b map[string]any) { b["date"] = "tomorrow" }},
		{"zero group", func(b map[string]any) { b["group_size"] = 0 }},
		{"over capacity", func(b map[string]any) { b["group_size"] = 9 }},
		{"missing source", func(b map[string]any) { b["source"] = "" }},
	}

	for _, test := range tests {
		booking := validTourBooking()
		test.mutate(booking)

		res := postJson(t, app, "/tour/TOUR_sunset-kayak/book", booking)
		assert.Equalf(t, fiber.StatusBadRequest, res.StatusCode, test.description)
	}
}

func TestBookTour_UnknownTour(t *testing.T) {
	app, _ := setupApp(t)

	res := postJson(t, app, "/tour/TOUR_nope/book", validTourBooking())
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestTourAvailabilityProbe(t *testing.T) {
	app, _ := setupApp(t)

	req, _ := http.NewRequest("GET", "/tour/TOUR_sunset-kayak/availability?date=2030-07-15", nil)
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "\"available\":true")
}

func TestReserveRental_DailyRate(t *testing.T) {
	app, _ := setupApp(t)

	res := postJson(t, app, "/rental/RENT_kayak-single/reserve", map[string]any{
		"date":           "2030-07-15",
		"pickup_time":    "09:00",
		"duration_hours": 8,
		"quantity":       2,
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		"customer_phone": "555-0100",
		"source":         "google",
	})
	assert.Equal(t, 200, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "\"total_price\": 160")
}

func TestBookLesson(t *testing.T) {
	app, store := setupApp(t)

	res := postJson(t, app, "/lesson/LES_sup-intro/book", map[string]any{
		"date":           "2030-07-15",
		"time":           "10:00",
		"skill_level":    "beginner",
		"group_size":     2,
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		"customer_phone": "555-0100",
		"source":         "friend",
	})
	assert.Equal(t, 200, res.StatusCode)

	reservations := []model.Reservation{}
	assert.NoError(t, store.Load(config.RESERVATIONS_KEY, &reservations))
	assert.Len(t, reservations, 1)
	assert.Equal(t, model.ReservationTypeInstruction, reservations[0].Type)
}

func TestCancelReservationRequiresToken(t *testing.T) {
	app, _ := setupApp(t)

	req, _ := http.NewRequest("PATCH", "/admin/reservations/RES_1/cancel", nil)
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode, "missing JWT is rejected")
}

func TestPortalEquipmentRequiresToken(t *testing.T) {
	app, _ := setupApp(t)

	req, _ := http.NewRequest("GET", "/portal/equipment", nil)
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode, "missing JWT is rejected")

	res = postJson(t, app, "/portal/rentals", map[string]any{
		"equipment_id":   "RENT_kayak-single",
		"start_date":     "2030-07-15",
		"duration_hours": 2,
	})
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode, "missing JWT is rejected")
}
