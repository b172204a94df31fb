package reservation

import (
	"testing"
	"time"

	"rentaride/internal/db"

	"github.com/stretchr/testify/assert"
)

func fixedToday(t *testing.T, date string) {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatal(err)
	}
	old := today
	today = func() time.Time { return day }
	t.Cleanup(func() { today = old })
}

func TestValidateField(t *testing.T) {
	fixedToday(t, "2025-06-01")

	cases := []struct {
		field, value string
		wantError    bool
	}{
		{FieldName, "John", false},
		{FieldName, "   ", true},
		{FieldEmail, "a@b.com", false},
		{FieldEmail, "a@b", true}, // no TLD
		{FieldEmail, "a b@c.com", true},
		{FieldPhone, "+1234567890", false},
		{FieldPhone, "123-456-7890", false},
		{FieldPhone, "12345", true}, // too short
		{FieldPhone, "abcdefghijk", true},
		{FieldDriverLicense, "DL-123", false},
		{FieldDriverLicense, "", true},
		{FieldStartDate, "2025-06-01", false}, // today is fine
		{FieldStartDate, "2025-07-15", false},
		{FieldStartDate, "2025-05-31", true}, // yesterday
		{FieldStartDate, "not-a-date", true},
		{FieldRentalPeriod, "3", false},
		{FieldRentalPeriod, "0", true},
		{FieldRentalPeriod, "-2", true},
		{FieldRentalPeriod, "two", true},
	}
	for _, tc := range cases {
		msg := ValidateField(tc.field, tc.value)
		if tc.wantError {
			assert.NotEmpty(t, msg, "%s=%q should be invalid", tc.field, tc.value)
		} else {
			assert.Empty(t, msg, "%s=%q should be valid", tc.field, tc.value)
		}
	}
}

func validForm() db.ReservationForm {
	return db.ReservationForm{
		Name:          "John Doe",
		Email:         "john@example.com",
		Phone:         "+1234567890",
		DriverLicense: "DL-42",
		StartDate:     "2025-06-10",
		RentalPeriod:  3,
	}
}

func TestCanSubmit(t *testing.T) {
	fixedToday(t, "2025-06-01")

	assert.True(t, CanSubmit(validForm()))

	missing := validForm()
	missing.DriverLicense = ""
	assert.False(t, CanSubmit(missing), "empty field blocks submit")

	invalid := validForm()
	invalid.Email = "a@b"
	assert.False(t, CanSubmit(invalid), "validation error blocks submit")

	zeroPeriod := validForm()
	zeroPeriod.RentalPeriod = 0
	assert.False(t, CanSubmit(zeroPeriod), "unset rental period blocks submit")
}

func TestApplyField(t *testing.T) {
	var f db.ReservationForm
	ApplyField(&f, FieldName, "Jane")
	ApplyField(&f, FieldRentalPeriod, "5")
	assert.Equal(t, "Jane", f.Name)
	assert.Equal(t, 5, f.RentalPeriod)

	ApplyField(&f, FieldRentalPeriod, "abc")
	assert.Equal(t, 0, f.RentalPeriod, "non-numeric period stores as 0")

	ApplyField(&f, "unknown", "x")
	assert.Equal(t, "Jane", f.Name, "unknown field is ignored")
}
