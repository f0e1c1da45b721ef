// utils/validation.go
package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return phoneRegex.MatchString(cleaned)
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone strips everything but digits; this is the form stored on the
// client record and handed to the messaging gateway.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidateBillingDay rejects days that can never resolve to a calendar date.
func ValidateBillingDay(day int) bool {
	return day >= 1 && day <= 31
}

var amountCleaner = regexp.MustCompile(`[^\d.,-]`)

// ParseAmount normalizes a free-form monetary input ("150", "1.234,56",
// "R$ 99,90") into a non-negative two-decimal value. Everything after this
// boundary works with a single decimal type.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := amountCleaner.ReplaceAllString(raw, "")
	if strings.Contains(cleaned, ",") {
		// Brazilian notation: dots are thousands separators.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	if cleaned == "" {
		return decimal.Zero, errors.New("amount is empty")
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, errors.New("amount is not numeric")
	}
	if value.IsNegative() {
		return decimal.Zero, errors.New("amount must not be negative")
	}
	return value.Round(2), nil
}

var sendTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidateSendTime checks the HH:MM send-time setting.
func ValidateSendTime(t string) bool {
	return sendTimeRegex.MatchString(t)
}
