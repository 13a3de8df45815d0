package router

import (
	"rental-webapp/handlers"
	"rental-webapp/middleware"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/", logger.New())
	api.Get("/health", handlers.GetHealth)
	api.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	//Auth
	login := api.Group("/login")
	login.Post("/", handlers.Login)
	api.Post("/register", handlers.Register)
	api.Patch("/password", middleware.Authorize(), handlers.UpdatePassword)

	//Tours
	tour := api.Group("/tour")
	tour.Get("/", handlers.GetTours)
	tour.Get("/:tourId", handlers.GetTour)
	tour.Get("/:tourId/availability", handlers.GetTourAvailability)
	tour.Post("/:tourId/book", handlers.BookTour)

	//Equipment rentals
	rental := api.Group("/rental")
	rental.Get("/", handlers.GetRentals)
	rental.Post("/:rentalId/reserve", handlers.ReserveRental)

	//Instruction
	lesson := api.Group("/lesson")
	lesson.Get("/", handlers.GetLessons)
	lesson.Post("/:lessonId/book", handlers.BookLesson)

	//Contact
	api.Post("/inquiry", handlers.SubmitInquiry)

	//Portal (hosted backend, requires sign-in)
	portal := api.Group("/portal", middleware.Authorize())
	portal.Get("/tours", handlers.GetRemoteTours)
	portal.Post("/tours", handlers.CreateRemoteTour)
	portal.Put("/tours/:tourId", handlers.UpdateRemoteTour)
	portal.Delete("/tours/:tourId", handlers.DeleteRemoteTour)
	portal.Get("/bookings", handlers.GetMyBookings)
	portal.Post("/bookings", handlers.CreateRemoteBooking)
	portal.Patch("/bookings/:bookingId/cancel", handlers.CancelRemoteBooking)
	portal.Get("/equipment", handlers.GetRemoteEquipment)
	portal.Get("/rentals", handlers.GetMyRentals)
	portal.Post("/rentals", handlers.CreateRemoteRental)
	portal.Patch("/rentals/:rentalId/cancel", handlers.CancelRemoteRental)
	portal.Get("/inquiries", handlers.GetInquiries)
	portal.Patch("/inquiries/:inquiryId", handlers.UpdateInquiryStatus)

	//Ledger administration
	admin := api.Group("/admin", middleware.Authorize())
	admin.Patch("/reservations/:reservationId/cancel", handlers.CancelReservation)
	admin.Get("/analytics", handlers.GetAnalytics)
}
