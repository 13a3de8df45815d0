package model

type Lesson struct {
	Id              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Duration        string   `json:"duration"`
	Price           float64  `json:"price"`
	MaxParticipants uint     `json:"max_participants"`
	Requirements    []string `json:"requirements"`
	Includes        []string `json:"includes"`
	ImageUrl        string   `json:"image_url"`
}
