package model

type Rental struct {
	Id                string  `json:"id" bson:"_id"`
	Type              string  `json:"type" bson:"type"`
	HourlyRate        float64 `json:"hourly_rate" bson:"hourly_rate"`
	DailyRate         float64 `json:"daily_rate" bson:"daily_rate"`
	QuantityAvailable uint    `json:"quantity_available" bson:"quantity_available"`
	Availability      string  `json:"availability,omitempty" bson:"availability,omitempty"`
	ImageUrl          string  `json:"image_url" bson:"image_url"`
}
