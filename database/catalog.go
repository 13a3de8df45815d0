package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rental-webapp/model"
)

// Catalog wrappers around the hosted tours and equipment collections.
// The local store stays the source for admission decisions; these back
// the portal's admin CRUD.

func GetRemoteTours() ([]model.Tour, error) {
	tours := []model.Tour{}

	cur, err := ToursCollection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{primitive.E{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: reading tours: %v", ErrRemote, err)
	}
	if err := cur.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("%w: reading tours: %v", ErrRemote, err)
	}

	return tours, nil
}

// FilterRemoteTours narrows by any non-zero criteria. Results come back
// cheapest first.
func FilterRemoteTours(duration string, difficulty string, maxPrice float64) ([]model.Tour, error) {
	filter := bson.D{}
	if duration != "" {
		filter = append(filter, primitive.E{Key: "duration", Value: duration})
	}
	if difficulty != "" {
		filter = append(filter, primitive.E{Key: "difficulty", Value: difficulty})
	}
	if maxPrice > 0 {
		filter = append(filter, primitive.E{Key: "price", Value: bson.D{primitive.E{Key: "$lte", Value: maxPrice}}})
	}

	tours := []model.Tour{}
	cur, err := ToursCollection.Find(ctx, filter, options.Find().SetSort(bson.D{primitive.E{Key: "price", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: filtering tours: %v", ErrRemote, err)
	}
	if err := cur.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("%w: filtering tours: %v", ErrRemote, err)
	}

	return tours, nil
}

func CreateRemoteTour(tour model.Tour) error {
	_, err := ToursCollection.InsertOne(ctx, tour)
	if err != nil {
		return fmt.Errorf("%w: creating tour: %v", ErrRemote, err)
	}
	return nil
}

func UpdateRemoteTour(tour model.Tour) error {
	_, err := ToursCollection.ReplaceOne(ctx, bson.D{primitive.E{Key: "_id", Value: tour.Id}}, tour)
	if err != nil {
		return fmt.Errorf("%w: updating tour: %v", ErrRemote, err)
	}
	return nil
}

func DeleteRemoteTour(tourId string) error {
	_, err := ToursCollection.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: tourId}})
	if err != nil {
		return fmt.Errorf("%w: deleting tour: %v", ErrRemote, err)
	}
	return nil
}

func GetRemoteEquipment(onlyAvailable bool) ([]model.Rental, error) {
	filter := bson.D{}
	if onlyAvailable {
		filter = append(filter, primitive.E{Key: "availability", Value: "available"})
	}

	equipment := []model.Rental{}
	cur, err := EquipmentCollection.Find(ctx, filter, options.Find().SetSort(bson.D{primitive.E{Key: "type", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: reading equipment: %v", ErrRemote, err)
	}
	if err := cur.All(ctx, &equipment); err != nil {
		return nil, fmt.Errorf("%w: reading equipment: %v", ErrRemote, err)
	}

	return equipment, nil
}

func UpdateEquipmentAvailability(equipmentId string, availability string) error {
	_, err := EquipmentCollection.UpdateOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: equipmentId}},
		bson.D{primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "availability", Value: availability}}}})
	if err != nil {
		return fmt.Errorf("%w: updating equipment availability: %v", ErrRemote, err)
	}
	return nil
}
