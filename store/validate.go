package store

import (
	"time"

	"cashtrack/models"
)

const maxNoteLength = 500

func validateAmount(amount float64) error {
	if amount <= 0 {
		return &ValidationError{Field: "amount", Message: "amount must be greater than 0"}
	}
	return nil
}

func validateChannel(channel string) error {
	for _, c := range models.PaymentChannels() {
		if channel == c {
			return nil
		}
	}
	return &ValidationError{Field: "paymentChannel", Message: "invalid payment channel"}
}

func validateCategory(category string) error {
	for _, c := range models.OutflowCategories() {
		if category == c {
			return nil
		}
	}
	return &ValidationError{Field: "category", Message: "invalid category"}
}

func validateNote(note string) error {
	if len(note) > maxNoteLength {
		return &ValidationError{Field: "note", Message: "note cannot exceed 500 characters"}
	}
	return nil
}

// ParseDay parses a YYYY-MM-DD query value. Missing or malformed values are
// invalid input, not validation errors, per the summary API contract.
func ParseDay(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, &InvalidInputError{Message: "please provide " + name}
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, &InvalidInputError{Message: name + " must be in YYYY-MM-DD format"}
	}
	return t, nil
}

// DayWindow returns the closed interval covering the calendar day of t,
// [00:00:00.000, 23:59:59.999] in local time.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
