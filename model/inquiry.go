package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	InquiryStatusNew      string = "new"
	InquiryStatusAnswered string = "answered"
	InquiryStatusClosed   string = "closed"
)

type Inquiry struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone" bson:"phone"`
	Subject   string             `json:"subject" bson:"subject"`
	Message   string             `json:"message" bson:"message"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt string             `json:"created_at" bson:"created_at"`
}
