package reservation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"rentaride/internal/db"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
)

// Form field names, matching the JSON keys of db.ReservationForm.
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldDriverLicense = "driverLicense"
	FieldStartDate     = "startDate"
	FieldRentalPeriod  = "rentalPeriod"
)

// ValidateField checks one field's raw input value and returns an
// inline message for the user, or "" when the value is acceptable.
// Unknown field names validate clean.
func ValidateField(field, value string) string {
	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return "Name is required"
		}
	case FieldEmail:
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email address (e.g., john.doe@example.com)"
		}
	case FieldPhone:
		if !phonePattern.MatchString(value) {
			return "Please enter a valid phone number (e.g., +1234567890 or 123-456-7890)"
		}
	case FieldDriverLicense:
		if strings.TrimSpace(value) == "" {
			return "Driver's license number is required"
		}
	case FieldStartDate:
		date, err := time.Parse("2006-01-02", value)
		if err != nil || date.Before(today()) {
			return "Please select a date today or later"
		}
	case FieldRentalPeriod:
		days, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || days <= 0 {
			return "Please enter a rental period of at least 1 day"
		}
	}
	return ""
}

// ApplyField writes one raw input value into the form. Values are
// stored even when invalid, like a controlled input; a non-numeric
// rental period stores as 0. Unknown fields are ignored.
func ApplyField(f *db.ReservationForm, field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldDriverLicense:
		f.DriverLicense = value
	case FieldStartDate:
		f.StartDate = value
	case FieldRentalPeriod:
		days, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			days = 0
		}
		f.RentalPeriod = days
	}
}

// Fields flattens the form into raw input values keyed by field name,
// the shape ValidateField consumes.
func Fields(f db.ReservationForm) map[string]string {
	period := ""
	if f.RentalPeriod != 0 {
		period = strconv.Itoa(f.RentalPeriod)
	}
	return map[string]string{
		FieldName:          f.Name,
		FieldEmail:         f.Email,
		FieldPhone:         f.Phone,
		FieldDriverLicense: f.DriverLicense,
		FieldStartDate:     f.StartDate,
		FieldRentalPeriod:  period,
	}
}

// ValidateForm runs every field check and returns the inline messages
// keyed by field name. An empty map means the form is clean.
func ValidateForm(f db.ReservationForm) map[string]string {
	errs := map[string]string{}
	for field, value := range Fields(f) {
		if msg := ValidateField(field, value); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// CanSubmit gates the editing -> review transition: every field filled
// and zero validation errors.
func CanSubmit(f db.ReservationForm) bool {
	for _, value := range Fields(f) {
		if value == "" {
			return false
		}
	}
	return len(ValidateForm(f)) == 0
}

// today is midnight-truncated local time; time-of-day is ignored when
// comparing start dates. Overridden in tests.
var today = func() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
