package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	BookingStatusPending  string = "pending"
	BookingStatusCanceled string = "cancelled"
)

type TourBooking struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	UserId       string             `json:"user_id" bson:"user_id"`
	TourId       string             `json:"tour_id" bson:"tour_id"`
	Date         string             `json:"date" bson:"date"`
	Participants uint               `json:"participants" bson:"participants"`
	TotalPrice   float64            `json:"total_price" bson:"total_price"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    string             `json:"created_at" bson:"created_at"`
}

type EquipmentRental struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	UserId        string             `json:"user_id" bson:"user_id"`
	EquipmentId   string             `json:"equipment_id" bson:"equipment_id"`
	StartDate     string             `json:"start_date" bson:"start_date"`
	EndDate       string             `json:"end_date" bson:"end_date"`
	DurationHours uint               `json:"duration_hours" bson:"duration_hours"`
	TotalPrice    float64            `json:"total_price" bson:"total_price"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     string             `json:"created_at" bson:"created_at"`
}
