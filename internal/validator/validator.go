// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// clockTimeRegex matches 24-hour "HH:MM" clock times (00:00 through 23:59).
var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = map[string]bool{
	"AED": true, "ARS": true, "AUD": true, "BGN": true, "BRL": true,
	"CAD": true, "CHF": true, "CLP": true, "CNY": true, "COP": true,
	"CZK": true, "DKK": true, "EGP": true, "EUR": true, "GBP": true,
	"HKD": true, "HRK": true, "HUF": true, "IDR": true, "ILS": true,
	"INR": true, "ISK": true, "JPY": true, "KRW": true, "MAD": true,
	"MXN": true, "MYR": true, "NOK": true, "NZD": true, "PEN": true,
	"PHP": true, "PLN": true, "RON": true, "RSD": true, "SAR": true,
	"SEK": true, "SGD": true, "THB": true, "TRY": true, "TWD": true,
	"UAH": true, "USD": true, "UYU": true, "VND": true, "ZAR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("project_type", validateProjectType)
		_ = v.RegisterValidation("extra_work_type", validateExtraWorkType)
		_ = v.RegisterValidation("clock_time", validateClockTime)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateProjectType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "hourly", "fixed":
		return true
	}
	return false
}

func validateExtraWorkType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "additional_budget", "hourly":
		return true
	}
	return false
}

// validateClockTime accepts empty strings so that optional labor endpoints
// bind cleanly; presence requirements are handled separately.
func validateClockTime(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return clockTimeRegex.MatchString(s)
}
