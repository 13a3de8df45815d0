package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rental-webapp/model"
)

func SubmitInquiry(inquiry model.Inquiry) error {
	_, err := InquiriesCollection.InsertOne(ctx, inquiry)
	if err != nil {
		return fmt.Errorf("%w: submitting inquiry: %v", ErrRemote, err)
	}
	return nil
}

func GetAllInquiries() ([]model.Inquiry, error) {
	inquiries := []model.Inquiry{}

	cur, err := InquiriesCollection.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{primitive.E{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: reading inquiries: %v", ErrRemote, err)
	}
	if err := cur.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("%w: reading inquiries: %v", ErrRemote, err)
	}

	return inquiries, nil
}

func UpdateInquiryStatus(inquiryId primitive.ObjectID, status string) error {
	_, err := InquiriesCollection.UpdateOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: inquiryId}},
		bson.D{primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "status", Value: status}}}})
	if err != nil {
		return fmt.Errorf("%w: updating inquiry status: %v", ErrRemote, err)
	}
	return nil
}
