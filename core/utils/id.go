package utils

import (
	"shoot-calendar-api/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateCalendarToken returns an opaque, URL safe calendar token.
func GenerateCalendarToken() (string, error) {
	return gonanoid.Generate(tokenAlphabet, constants.CalendarTokenLength)
}
