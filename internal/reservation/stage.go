package reservation

import (
	"fmt"

	"rentaride/internal/db"
)

// Stage is the reservation view state (persisted car/form plus the
// session-transient submitted/confirmed flags determine it).
type Stage string

const (
	StageNoCar       Stage = "no_car"      // dead end, back to catalog
	StageUnavailable Stage = "unavailable" // car snapshot says available=false
	StageEditing     Stage = "editing"
	StageReview      Stage = "review"
	StageConfirmed   Stage = "confirmed" // terminal for the session
)

// allowTransition is the directed graph of legal stage flows for the
// explicit user actions (submit, back, confirm). Derived stages NoCar
// and Unavailable are entered by snapshot changes, not transitions.
var allowTransition = map[Stage][]Stage{
	StageEditing:   {StageReview},
	StageReview:    {StageEditing, StageConfirmed},
	StageConfirmed: {},
}

// CanTransition reports whether from -> to is a legal user-driven flow.
func CanTransition(from, to Stage) bool {
	if from == to {
		return true
	}
	for _, s := range allowTransition[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition validates from -> to, returning the target stage on success.
func Transition(from, to Stage) (Stage, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("invalid reservation stage transition: %s -> %s", from, to)
	}
	return to, nil
}

// DeriveStage computes the stage from the persisted reservation and the
// session flags. The car snapshot wins: a car flipped to unavailable
// routes to StageUnavailable even mid-review.
func DeriveStage(res db.Reservation, submitted, confirmed bool) Stage {
	switch {
	case res.Car == nil:
		return StageNoCar
	case !res.Car.Available && !confirmed:
		return StageUnavailable
	case confirmed:
		return StageConfirmed
	case submitted:
		return StageReview
	default:
		return StageEditing
	}
}

// TotalPrice is pricePerDay times the rental period. A zero period
// (nothing entered yet) displays as one day so review never shows a
// zero price.
func TotalPrice(car *db.Car, form db.ReservationForm) float64 {
	if car == nil {
		return 0
	}
	period := form.RentalPeriod
	if period == 0 {
		period = 1
	}
	return car.PricePerDay * float64(period)
}
