package db

// Car is one row of the cars table, keyed by VIN. Only Available is
// mutated after creation, and only by a successful reservation claim.
type Car struct {
	VIN               string  `json:"vin"`
	Brand             string  `json:"brand"`
	CarModel          string  `json:"carModel"`
	CarType           string  `json:"carType"`
	Description       string  `json:"description"`
	FuelType          string  `json:"fuelType"`
	Image             string  `json:"image"`
	Mileage           string  `json:"mileage"`
	PricePerDay       float64 `json:"pricePerDay"`
	YearOfManufacture int     `json:"yearOfManufacture"`
	Available         bool    `json:"available"`
}

// ReservationForm holds the renter's details as entered. Nothing is
// enforced here; validation happens at edit/submit time.
type ReservationForm struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DriverLicense string `json:"driverLicense"`
	StartDate     string `json:"startDate"` // ISO date, 2006-01-02
	RentalPeriod  int    `json:"rentalPeriod"`
}

// Reservation is the persisted in-flight reservation: a snapshot of the
// selected car (not a live join) plus the form. Car is nil until the
// visitor picks one.
type Reservation struct {
	Car  *Car            `json:"car"`
	Form ReservationForm `json:"form"`
}
