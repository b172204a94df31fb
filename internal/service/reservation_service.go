package service

import (
	"errors"
	"sync"

	"rentaride/internal/db"
	apperrors "rentaride/internal/errors"
	"rentaride/internal/reservation"
	"rentaride/internal/session"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ReservationService carries the single in-progress reservation through
// its stages. Car and form live in the durable slot; submitted/confirmed
// are session state, like the original storefront kept them.
type ReservationService struct {
	Store  CarStore
	Slot   *session.ReservationSlot
	Sender *SenderService

	mu        sync.Mutex
	submitted bool
	confirmed bool
	code      string
}

func NewReservationService(store CarStore, slot *session.ReservationSlot, sender *SenderService) *ReservationService {
	return &ReservationService{Store: store, Slot: slot, Sender: sender}
}

// ReservationView is the rendered reservation state.
type ReservationView struct {
	Reservation db.Reservation    `json:"reservation"`
	Stage       reservation.Stage `json:"stage"`
	TotalPrice  float64           `json:"totalPrice"`
	Code        string            `json:"confirmationCode,omitempty"`
}

func (s *ReservationService) viewLocked(res db.Reservation) ReservationView {
	return ReservationView{
		Reservation: res,
		Stage:       reservation.DeriveStage(res, s.submitted, s.confirmed),
		TotalPrice:  reservation.TotalPrice(res.Car, res.Form),
		Code:        s.code,
	}
}

func (s *ReservationService) View() ReservationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(s.Slot.Get())
}

// RentNow attaches a car to the persisted reservation, keeping any form
// fields already entered. Unavailable cars are rejected outright.
func (s *ReservationService) RentNow(vin string) error {
	car, err := s.Store.GetCarByVIN(vin)
	if err != nil {
		return err
	}
	if !car.Available {
		return apperrors.ErrCarUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.Slot.Get()
	res.Car = car
	s.Slot.Put(res)
	s.submitted, s.confirmed, s.code = false, false, ""
	return nil
}

// UpdateForm applies a field patch and validates each changed field.
// The returned map holds inline messages keyed by field name; invalid
// input is still stored, mirroring a controlled form input.
func (s *ReservationService) UpdateForm(patch map[string]string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.Slot.Get()
	switch reservation.DeriveStage(res, s.submitted, s.confirmed) {
	case reservation.StageEditing:
	case reservation.StageNoCar:
		return nil, apperrors.ErrNoCarSelected
	case reservation.StageUnavailable:
		return nil, apperrors.ErrCarUnavailable
	default:
		return nil, apperrors.ErrInvalidStage
	}

	fieldErrors := map[string]string{}
	for field, value := range patch {
		if msg := reservation.ValidateField(field, value); msg != "" {
			fieldErrors[field] = msg
		}
		reservation.ApplyField(&res.Form, field, value)
	}
	s.Slot.Put(res)
	return fieldErrors, nil
}

// Submit moves editing to review once every field is filled and clean.
func (s *ReservationService) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.Slot.Get()
	stage := reservation.DeriveStage(res, s.submitted, s.confirmed)
	switch stage {
	case reservation.StageEditing:
	case reservation.StageNoCar:
		return apperrors.ErrNoCarSelected
	case reservation.StageUnavailable:
		return apperrors.ErrCarUnavailable
	default:
		return apperrors.ErrInvalidStage
	}
	if !reservation.CanSubmit(res.Form) {
		return apperrors.ErrFormIncomplete
	}
	if _, err := reservation.Transition(stage, reservation.StageReview); err != nil {
		return err
	}
	s.submitted = true
	return nil
}

// Confirm claims the car. On ErrAlreadyReserved the persisted snapshot's
// availability flips to false so the next render routes to the
// unavailable screen; any other failure leaves the stage unchanged for
// a retry.
func (s *ReservationService) Confirm() (ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.Slot.Get()
	stage := reservation.DeriveStage(res, s.submitted, s.confirmed)
	switch stage {
	case reservation.StageReview:
	case reservation.StageNoCar:
		return s.viewLocked(res), apperrors.ErrNoCarSelected
	case reservation.StageUnavailable:
		return s.viewLocked(res), apperrors.ErrCarUnavailable
	default:
		return s.viewLocked(res), apperrors.ErrInvalidStage
	}
	if _, err := reservation.Transition(stage, reservation.StageConfirmed); err != nil {
		return s.viewLocked(res), err
	}

	err := s.Store.Reserve(res.Car.VIN)
	switch {
	case err == nil:
		s.confirmed = true
		s.code = uuid.NewString()
		if s.Sender != nil {
			s.Sender.SendReservationConfirmation(res, s.code)
		}
		logrus.Infof("reservation confirmed for car %s, code %s", res.Car.VIN, s.code)
		return s.viewLocked(res), nil
	case errors.Is(err, apperrors.ErrAlreadyReserved):
		res.Car.Available = false
		s.Slot.Put(res)
		return s.viewLocked(res), err
	default:
		logrus.Errorf("confirming reservation for car %s: %v", res.Car.VIN, err)
		return s.viewLocked(res), err
	}
}

// Cancel clears the car from the persisted reservation and resets the
// session stage. The entered form fields stay for the next attempt.
func (s *ReservationService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.Slot.Get()
	res.Car = nil
	s.Slot.Put(res)
	s.submitted, s.confirmed, s.code = false, false, ""
}
