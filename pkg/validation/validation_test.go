package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapapply/pkg/models"
)

func validApplication() models.Application {
	return models.Application{
		FirstName: "John",
		LastName:  "Driver",
		Email:     "john.driver@example.com",
		Phone:     "+16502530000",
		Address:   "123 Main St",
		City:      "Austin",
		State:     "TX",
		ZipCode:   "78701",
		CarMake:   "Toyota",
		CarModel:  "Camry",
		CarYear:   "2020",
	}
}

func setField(app *models.Application, name, value string) {
	switch name {
	case "firstName":
		app.FirstName = value
	case "lastName":
		app.LastName = value
	case "email":
		app.Email = value
	case "phone":
		app.Phone = value
	case "address":
		app.Address = value
	case "city":
		app.City = value
	case "state":
		app.State = value
	case "zipCode":
		app.ZipCode = value
	case "carMake":
		app.CarMake = value
	case "carModel":
		app.CarModel = value
	case "carYear":
		app.CarYear = value
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		field   string
		message string
	}{
		{"firstName", "First Name is required"},
		{"lastName", "Last Name is required"},
		{"email", "Email is required"},
		{"phone", "Phone number is required"},
		{"address", "Street Address is required"},
		{"city", "City is required"},
		{"state", "State is required"},
		{"zipCode", "ZIP Code is required"},
		{"carMake", "Car Make is required"},
		{"carModel", "Car Model is required"},
		{"carYear", "Car Year is required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			app := validApplication()
			setField(&app, tt.field, "   ")

			result := Validate(app)

			assert.False(t, result.Valid)
			assert.Equal(t, tt.field, result.Field)
			assert.Equal(t, tt.message, result.Message)
		})
	}
}

func TestValidateFirstViolationWins(t *testing.T) {
	app := validApplication()
	app.FirstName = ""
	app.City = ""
	app.Email = "not-an-email"

	result := Validate(app)

	assert.False(t, result.Valid)
	assert.Equal(t, "firstName", result.Field)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain word", "not-an-email", false},
		{"missing domain", "john@", false},
		{"missing tld", "john@example", false},
		{"contains space", "john smith@example.com", false},
		{"minimal valid", "a@b.co", true},
		{"plus address", "john+wrap@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApplication()
			app.Email = tt.email

			result := Validate(app)

			if tt.valid {
				assert.True(t, result.Valid)
			} else {
				assert.False(t, result.Valid)
				assert.Equal(t, "email", result.Field)
				assert.Equal(t, "Please enter a valid email address", result.Message)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Run("invalid number", func(t *testing.T) {
		app := validApplication()
		app.Phone = "12345"

		result := Validate(app)

		assert.False(t, result.Valid)
		assert.Equal(t, "phone", result.Field)
		assert.Equal(t, "Please enter a valid phone number", result.Message)
	})

	t.Run("garbage input", func(t *testing.T) {
		app := validApplication()
		app.Phone = "call me maybe"

		result := Validate(app)

		assert.False(t, result.Valid)
		assert.Equal(t, "phone", result.Field)
	})

	t.Run("national format normalized to E164", func(t *testing.T) {
		app := validApplication()
		app.Phone = "650-253-0000"

		result := Validate(app)

		require.True(t, result.Valid)
		assert.Equal(t, "+16502530000", result.Record.Phone)
	})

	t.Run("international number kept as E164", func(t *testing.T) {
		app := validApplication()
		app.Phone = "+44 20 7031 3000"

		result := Validate(app)

		require.True(t, result.Valid)
		assert.Equal(t, "+442070313000", result.Record.Phone)
	})
}

func TestValidateCarYearBoundaries(t *testing.T) {
	maxYear := time.Now().Year() + 1

	tests := []struct {
		year  string
		valid bool
	}{
		{"1899", false},
		{"1900", true},
		{fmt.Sprintf("%d", maxYear), true},
		{fmt.Sprintf("%d", maxYear+1), false},
		{"not-a-year", false},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			app := validApplication()
			app.CarYear = tt.year

			result := Validate(app)

			if tt.valid {
				assert.True(t, result.Valid)
			} else {
				assert.False(t, result.Valid)
				assert.Equal(t, "carYear", result.Field)
				assert.Equal(t, fmt.Sprintf("Please enter a valid year between 1900 and %d", maxYear), result.Message)
			}
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	app := validApplication()
	app.Email = "not-an-email"

	first := Validate(app)
	second := Validate(app)

	assert.Equal(t, first, second)

	valid := validApplication()
	assert.Equal(t, Validate(valid), Validate(valid))
}

func TestValidateNormalizesRecord(t *testing.T) {
	app := validApplication()
	app.FirstName = "  John "
	app.City = " Austin "
	app.CarYear = " 2020 "

	result := Validate(app)

	require.True(t, result.Valid)
	assert.Equal(t, "John", result.Record.FirstName)
	assert.Equal(t, "Austin", result.Record.City)
	assert.Equal(t, "2020", result.Record.CarYear)
}
