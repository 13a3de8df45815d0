package handlers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var phonePattern = regexp.MustCompile(`^[\d\s()+-]{7,}$`)

func customerNameValidation(customerName string) error {
	if len(strings.TrimSpace(customerName)) < 2 {
		return errors.New("name is too short")
	}
	return nil
}

func emailValidation(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%v is not a valid email address", email)
	}
	return nil
}

func phoneValidation(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%v is not a valid phone number", phone)
	}
	return nil
}

func dateValidation(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%v is not a valid date, expected YYYY-MM-DD", date)
	}
	return nil
}

func sourceValidation(source string) error {
	if strings.TrimSpace(source) == "" {
		return errors.New("acquisition source is required")
	}
	return nil
}

func groupSizeValidation(groupSize uint, capacity uint) error {
	if groupSize == 0 {
		return errors.New("group size must be at least 1")
	}
	if groupSize > capacity {
		return fmt.Errorf("group size %v exceeds the maximum of %v", groupSize, capacity)
	}
	return nil
}

func customerFieldsValidation(name string, email string, phone string, source string) error {
	if err := customerNameValidation(name); err != nil {
		return err
	}
	if err := emailValidation(email); err != nil {
		return err
	}
	if err := phoneValidation(phone); err != nil {
		return err
	}
	if err := sourceValidation(source); err != nil {
		return err
	}
	return nil
}
