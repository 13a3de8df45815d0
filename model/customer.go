package model

type Customer struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Source      string   `json:"source"`
	Preferences []string `json:"preferences"`
	DateCreated string   `json:"date_created"`
}
