package localstore

import (
	"rental-webapp/config"
	"rental-webapp/model"
)

// SeedIfEmpty fills the catalog collections with the default offering
// on first start. Customer and reservation collections are left alone.
func SeedIfEmpty(store *Store) error {
	tours := []model.Tour{}
	if err := store.Load(config.TOURS_KEY, &tours); err != nil {
		return err
	}
	if len(tours) == 0 {
		if err := store.Save(config.TOURS_KEY, defaultTours()); err != nil {
			return err
		}
	}

	rentals := []model.Rental{}
	if err := store.Load(config.RENTALS_KEY, &rentals); err != nil {
		return err
	}
	if len(rentals) == 0 {
		if err := store.Save(config.RENTALS_KEY, defaultRentals()); err != nil {
			return err
		}
	}

	lessons := []model.Lesson{}
	if err := store.Load(config.LESSONS_KEY, &lessons); err != nil {
		return err
	}
	if len(lessons) == 0 {
		if err := store.Save(config.LESSONS_KEY, defaultLessons()); err != nil {
			return err
		}
	}

	return nil
}

func defaultTours() []model.Tour {
	return []model.Tour{
		{
			Id:          "TOUR_sunset-kayak",
			Name:        "Sunset Kayak Tour",
			Description: "Experience the beautiful Jacksonville sunset from the water",
			Duration:    "2 hours",
			Capacity:    8,
			Price:       79.99,
			Requirements: []string{
				"Basic swimming ability",
				"Minimum age: 12",
			},
		},
		{
			Id:          "TOUR_morning-wildlife",
			Name:        "Morning Wildlife Tour",
			Description: "Explore local wildlife in their natural habitat",
			Duration:    "3 hours",
			Capacity:    6,
			Price:       89.99,
			Requirements: []string{
				"Early morning start",
				"Camera recommended",
			},
		},
	}
}

func defaultRentals() []model.Rental {
	return []model.Rental{
		{Id: "RENT_kayak-single", Type: "Kayak - Single", HourlyRate: 25, DailyRate: 80, QuantityAvailable: 10},
		{Id: "RENT_kayak-tandem", Type: "Kayak - Tandem", HourlyRate: 35, DailyRate: 100, QuantityAvailable: 5},
		{Id: "RENT_sup", Type: "Stand-up Paddleboard", HourlyRate: 20, DailyRate: 70, QuantityAvailable: 8},
	}
}

func defaultLessons() []model.Lesson {
	return []model.Lesson{
		{
			Id:              "LES_kayak-basic",
			Name:            "Kayaking Basics",
			Description:     "Learn fundamental kayaking skills and safety procedures",
			Duration:        "2 hours",
			Price:           79.99,
			MaxParticipants: 4,
			Requirements:    []string{"Basic swimming ability", "Minimum age: 12"},
			Includes:        []string{"Equipment rental", "Safety gear", "Basic instruction manual"},
		},
		{
			Id:              "LES_sup-intro",
			Name:            "Stand-Up Paddleboarding Intro",
			Description:     "Master the basics of SUP in a friendly, supportive environment",
			Duration:        "1.5 hours",
			Price:           69.99,
			MaxParticipants: 4,
			Requirements:    []string{"Basic swimming ability", "Minimum age: 10"},
			Includes:        []string{"Paddleboard rental", "Safety gear", "Basic instruction manual"},
		},
		{
			Id:              "LES_kayak-advanced",
			Name:            "Advanced Kayaking Skills",
			Description:     "Advanced techniques for experienced kayakers",
			Duration:        "3 hours",
			Price:           99.99,
			MaxParticipants: 3,
			Requirements:    []string{"Intermediate kayaking experience", "Strong swimming ability", "Minimum age: 16"},
			Includes:        []string{"Equipment rental", "Safety gear", "Advanced technique guide"},
		},
	}
}
