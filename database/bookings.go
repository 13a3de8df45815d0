package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rental-webapp/model"
)

func CreateTourBooking(booking model.TourBooking) error {
	_, err := TourBookingsCollection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("%w: creating tour booking: %v", ErrRemote, err)
	}
	return nil
}

// CreateEquipmentRental records the rental and flips the equipment to
// rented, mirroring the two-step write of the hosted backend.
func CreateEquipmentRental(rental model.EquipmentRental) error {
	_, err := EquipmentRentalsCollection.InsertOne(ctx, rental)
	if err != nil {
		return fmt.Errorf("%w: creating equipment rental: %v", ErrRemote, err)
	}

	if err := UpdateEquipmentAvailability(rental.EquipmentId, "rented"); err != nil {
		return err
	}
	return nil
}

func GetUserBookings(userId string) ([]model.TourBooking, error) {
	bookings := []model.TourBooking{}

	cur, err := TourBookingsCollection.Find(ctx,
		bson.D{primitive.E{Key: "user_id", Value: userId}},
		options.Find().SetSort(bson.D{primitive.E{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: reading bookings: %v", ErrRemote, err)
	}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("%w: reading bookings: %v", ErrRemote, err)
	}

	return bookings, nil
}

func GetUserRentals(userId string) ([]model.EquipmentRental, error) {
	rentals := []model.EquipmentRental{}

	cur, err := EquipmentRentalsCollection.Find(ctx,
		bson.D{primitive.E{Key: "user_id", Value: userId}},
		options.Find().SetSort(bson.D{primitive.E{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: reading rentals: %v", ErrRemote, err)
	}
	if err := cur.All(ctx, &rentals); err != nil {
		return nil, fmt.Errorf("%w: reading rentals: %v", ErrRemote, err)
	}

	return rentals, nil
}

func CancelTourBooking(bookingId primitive.ObjectID) error {
	_, err := TourBookingsCollection.UpdateOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: bookingId}},
		bson.D{primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "status", Value: model.BookingStatusCanceled}}}})
	if err != nil {
		return fmt.Errorf("%w: cancelling booking: %v", ErrRemote, err)
	}
	return nil
}

// CancelEquipmentRental cancels the rental and makes the equipment
// bookable again.
func CancelEquipmentRental(rentalId primitive.ObjectID, equipmentId string) error {
	_, err := EquipmentRentalsCollection.UpdateOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: rentalId}},
		bson.D{primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "status", Value: model.BookingStatusCanceled}}}})
	if err != nil {
		return fmt.Errorf("%w: cancelling rental: %v", ErrRemote, err)
	}

	if err := UpdateEquipmentAvailability(equipmentId, "available"); err != nil {
		return err
	}
	return nil
}
