package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type UserData struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id"`
	Login          string             `json:"login" bson:"login,omitempty"`
	FullName       string             `json:"full_name" bson:"full_name,omitempty"`
	HashedPassword string             `json:"password_hash" bson:"password_hash,omitempty"`
	Role           string             `json:"role" bson:"role,omitempty"`
	CreatedAt      string             `json:"created_at" bson:"created_at,omitempty"`
}
