package session

import (
	"rentaride/internal/db"

	"github.com/sirupsen/logrus"
)

const reservationKey = "reservation"

// DefaultReservation is the empty shape a fresh or corrupted slot
// decodes to: no car, zeroed form.
func DefaultReservation() db.Reservation {
	return db.Reservation{Car: nil, Form: db.ReservationForm{}}
}

// ReservationSlot is the typed view over the "reservation" key. It is
// the sole source of truth for the in-flight reservation; any newer
// write supersedes (not merges) the stored value.
type ReservationSlot struct {
	client *Client
}

func NewReservationSlot(client *Client) *ReservationSlot {
	return &ReservationSlot{client: client}
}

func (r *ReservationSlot) Get() db.Reservation {
	return Read(r.client, reservationKey, DefaultReservation())
}

// Put stores the reservation. A write failure is logged and swallowed:
// the slot degrades to in-memory state rather than blocking the flow.
func (r *ReservationSlot) Put(res db.Reservation) {
	if err := Write(r.client, reservationKey, res); err != nil {
		logrus.Errorf("session: persisting reservation: %v", err)
	}
}

// OnChange runs fn after another client updates the slot.
func (r *ReservationSlot) OnChange(fn func()) func() {
	return r.client.Subscribe(reservationKey, fn)
}
