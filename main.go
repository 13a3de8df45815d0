package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"rental-webapp/config"
	"rental-webapp/database"
	"rental-webapp/handlers"
	"rental-webapp/ledger"
	"rental-webapp/localstore"
	"rental-webapp/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("no .env file found, relying on the environment")
	}

	store, err := localstore.New(config.GetLocalDataDir())
	if err != nil {
		log.Fatalf("cannot initialize local store: %v", err)
	}
	if err := localstore.SeedIfEmpty(store); err != nil {
		log.Fatalf("cannot seed local store: %v", err)
	}

	handlers.Setup(ledger.New(store))

	database.UsersCollection, err = database.DBInit("users")
	if err != nil {
		log.Fatalf("cannot initialize users collection: %v", err)
	}
	database.ToursCollection, err = database.DBInit("tours")
	if err != nil {
		log.Fatalf("cannot initialize tours collection: %v", err)
	}
	database.EquipmentCollection, err = database.DBInit("equipment")
	if err != nil {
		log.Fatalf("cannot initialize equipment collection: %v", err)
	}
	database.TourBookingsCollection, err = database.DBInit("tour_bookings")
	if err != nil {
		log.Fatalf("cannot initialize tour bookings collection: %v", err)
	}
	database.EquipmentRentalsCollection, err = database.DBInit("equipment_rentals")
	if err != nil {
		log.Fatalf("cannot initialize equipment rentals collection: %v", err)
	}
	database.InquiriesCollection, err = database.DBInit("inquiries")
	if err != nil {
		log.Fatalf("cannot initialize inquiries collection: %v", err)
	}

	app := fiber.New()

	router.SetupRoutes(app)

	app.Listen(":80")
}
