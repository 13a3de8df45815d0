package config

import (
	"fmt"
	"os"
)

const LOCAL_DATA_DIR string = "./data"

// Collection keys for the local store.
const (
	CUSTOMERS_KEY    string = "customers"
	RESERVATIONS_KEY string = "reservations"
	TOURS_KEY        string = "tours"
	RENTALS_KEY      string = "rentals"
	LESSONS_KEY      string = "lessons"
	AVAILABILITY_KEY string = "availability"
)

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func GetLocalDataDir() string {
	dir, exist := os.LookupEnv("LOCAL_DATA_DIR")
	if exist {
		return dir
	}
	return LOCAL_DATA_DIR
}
