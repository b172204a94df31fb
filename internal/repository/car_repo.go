package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"rentaride/internal/db"
	apperrors "rentaride/internal/errors"
)

type CarRepository struct {
	DB *sql.DB
}

func NewCarRepository(database *sql.DB) *CarRepository {
	return &CarRepository{DB: database}
}

const carColumns = `vin, brand, car_model, car_type, description, fuel_type, image, mileage, price_per_day, year_of_manufacture, available`

func scanCar(row interface{ Scan(dest ...any) error }) (*db.Car, error) {
	var c db.Car
	err := row.Scan(
		&c.VIN, &c.Brand, &c.CarModel, &c.CarType, &c.Description,
		&c.FuelType, &c.Image, &c.Mileage, &c.PricePerDay,
		&c.YearOfManufacture, &c.Available,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCars returns every car ordered by brand ascending. An empty table
// yields an empty slice, not an error.
func (r *CarRepository) ListCars() ([]db.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY brand ASC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing cars: %v", apperrors.ErrStore, err)
	}
	defer rows.Close()

	cars := []db.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning car row: %v", apperrors.ErrStore, err)
		}
		cars = append(cars, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating car rows: %v", apperrors.ErrStore, err)
	}
	return cars, nil
}

func (r *CarRepository) GetCarByVIN(vin string) (*db.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE vin = $1`

	c, err := scanCar(r.DB.QueryRow(query, vin))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("car with vin '%s': %w", vin, apperrors.ErrCarNotFound)
		}
		return nil, fmt.Errorf("%w: querying car '%s': %v", apperrors.ErrStore, vin, err)
	}
	return c, nil
}

// GetAvailability reads the current availability flag for a single VIN.
func (r *CarRepository) GetAvailability(vin string) (bool, error) {
	var available bool
	err := r.DB.QueryRow(`SELECT available FROM cars WHERE vin = $1`, vin).Scan(&available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("car with vin '%s': %w", vin, apperrors.ErrCarNotFound)
		}
		return false, fmt.Errorf("%w: checking availability for '%s': %v", apperrors.ErrStore, vin, err)
	}
	return available, nil
}

// Reserve claims a car: it checks availability and only then flips the
// flag. The check and the update are two statements with no lock or
// version column between them; two clients can both pass the check and
// the WHERE clause on the update lets the database serialize the final
// write, last-write-wins. When the check already sees false no update
// is issued at all.
func (r *CarRepository) Reserve(vin string) error {
	available, err := r.GetAvailability(vin)
	if err != nil {
		return err
	}
	if !available {
		return apperrors.ErrAlreadyReserved
	}

	result, err := r.DB.Exec(`UPDATE cars SET available = FALSE WHERE vin = $1 AND available = TRUE`, vin)
	if err != nil {
		return fmt.Errorf("%w: reserving car '%s': %v", apperrors.ErrStore, vin, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		// Lost the race to a concurrent claimant between check and update.
		return apperrors.ErrAlreadyReserved
	}
	return nil
}
