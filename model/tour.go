package model

type Tour struct {
	Id           string   `json:"id" bson:"_id"`
	Name         string   `json:"name" bson:"name"`
	Description  string   `json:"description" bson:"description"`
	Duration     string   `json:"duration" bson:"duration"`
	Difficulty   string   `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Capacity     uint     `json:"capacity" bson:"capacity"`
	Price        float64  `json:"price" bson:"price"`
	Requirements []string `json:"requirements" bson:"requirements"`
	ImageUrl     string   `json:"image_url" bson:"image_url"`
}
