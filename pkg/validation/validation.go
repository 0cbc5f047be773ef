package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"

	"wrapapply/pkg/models"
)

// Numbers typed without a country code are parsed as US, matching the
// form's preferred-country list.
const defaultPhoneRegion = "US"

const minCarYear = 1900

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of running the rule set over one application.
// When Valid is false, Field names the first violated field and Message
// carries its user-facing error text. When Valid is true, Record holds
// the normalized application (trimmed values, phone in E.164).
type Result struct {
	Valid   bool
	Field   string
	Label   string
	Message string
	Record  *models.Application
}

type field struct {
	name  string
	label string
	value string
}

// orderedFields lists every field in form order. Rule evaluation follows
// this order so the first violation matches what the user sees first.
func orderedFields(app models.Application) []field {
	return []field{
		{"firstName", "First Name", app.FirstName},
		{"lastName", "Last Name", app.LastName},
		{"email", "Email", app.Email},
		{"phone", "Phone", app.Phone},
		{"address", "Street Address", app.Address},
		{"city", "City", app.City},
		{"state", "State", app.State},
		{"zipCode", "ZIP Code", app.ZipCode},
		{"carMake", "Car Make", app.CarMake},
		{"carModel", "Car Model", app.CarModel},
		{"carYear", "Car Year", app.CarYear},
	}
}

// Validate runs the fixed rule set over an application and returns either
// the normalized record or the first violation. It is pure: no I/O, no
// mutation of its input, and identical results for identical inputs.
func Validate(app models.Application) Result {
	fields := orderedFields(app)

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			if f.name == "phone" {
				return invalid(f, "Phone number is required")
			}
			return invalid(f, fmt.Sprintf("%s is required", f.label))
		}
	}

	emailField := fields[2]
	if !emailPattern.MatchString(strings.TrimSpace(emailField.value)) {
		return invalid(emailField, "Please enter a valid email address")
	}

	phoneField := fields[3]
	number, err := phonenumbers.Parse(strings.TrimSpace(phoneField.value), defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return invalid(phoneField, "Please enter a valid phone number")
	}

	yearField := fields[10]
	maxYear := time.Now().Year() + 1
	year, err := strconv.Atoi(strings.TrimSpace(yearField.value))
	if err != nil || year < minCarYear || year > maxYear {
		return invalid(yearField, fmt.Sprintf("Please enter a valid year between %d and %d", minCarYear, maxYear))
	}

	record := models.Application{
		FirstName: strings.TrimSpace(app.FirstName),
		LastName:  strings.TrimSpace(app.LastName),
		Email:     strings.TrimSpace(app.Email),
		Phone:     phonenumbers.Format(number, phonenumbers.E164),
		Address:   strings.TrimSpace(app.Address),
		City:      strings.TrimSpace(app.City),
		State:     strings.TrimSpace(app.State),
		ZipCode:   strings.TrimSpace(app.ZipCode),
		CarMake:   strings.TrimSpace(app.CarMake),
		CarModel:  strings.TrimSpace(app.CarModel),
		CarYear:   strconv.Itoa(year),
	}

	return Result{Valid: true, Record: &record}
}

func invalid(f field, message string) Result {
	return Result{
		Field:   f.name,
		Label:   f.label,
		Message: message,
	}
}
