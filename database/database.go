package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rental-webapp/config"
	"rental-webapp/model"
)

// ErrRemote marks a failed call to the hosted backend. Handlers catch
// it, log it, and show a generic message; there is no retry policy.
var ErrRemote = errors.New("remote call failure")

var ctx = context.TODO()

var (
	UsersCollection            *mongo.Collection
	ToursCollection            *mongo.Collection
	EquipmentCollection        *mongo.Collection
	TourBookingsCollection     *mongo.Collection
	EquipmentRentalsCollection *mongo.Collection
	InquiriesCollection        *mongo.Collection
)

func DBInit(collectionName string) (*mongo.Collection, error) {
	connString, err := config.GetSecret("MONGODB_CONNSTRING")
	if err != nil {
		log.Fatal("cannot find connection string for DB in the environment")
	}

	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client.Database("rental-webapp").Collection(collectionName), nil
}

func GetUserData(userLogin string) (model.UserData, error) {
	var user model.UserData
	cur, err := UsersCollection.Find(ctx, bson.D{primitive.E{Key: "login", Value: userLogin}})
	if err != nil {
		return model.UserData{}, fmt.Errorf("%w: reading user data: %v", ErrRemote, err)
	}

	for cur.Next(ctx) {
		err := cur.Decode(&user)
		if err != nil {
			return model.UserData{}, fmt.Errorf("%w: reading user data: %v", ErrRemote, err)
		}
	}

	if err := cur.Err(); err != nil {
		return model.UserData{}, fmt.Errorf("%w: reading user data: %v", ErrRemote, err)
	}

	cur.Close(ctx)

	return user, nil
}

func CreateUser(user model.UserData) error {
	_, err := UsersCollection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: creating user profile: %v", ErrRemote, err)
	}
	return nil
}

func UpdateUserPassword(userLogin string, passwordHash string) error {
	_, err := UsersCollection.UpdateOne(ctx,
		bson.D{primitive.E{Key: "login", Value: userLogin}},
		bson.D{primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "password_hash", Value: passwordHash}}}})
	if err != nil {
		return fmt.Errorf("%w: updating password: %v", ErrRemote, err)
	}
	return nil
}
