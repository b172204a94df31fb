package service

import (
	"fmt"

	"rentaride/internal/session"

	"github.com/sirupsen/logrus"
)

// JobService holds the cron-driven background work: keeping the
// persisted reservation's car snapshot in step with the backend row.
type JobService struct {
	Store CarStore
	Slot  *session.ReservationSlot
}

func NewJobService(store CarStore, slot *session.ReservationSlot) *JobService {
	return &JobService{Store: store, Slot: slot}
}

// SyncReservationCar re-reads the selected car's availability and
// updates the snapshot when it drifted. Read-only against the backend;
// a no-car slot is a no-op.
func (s *JobService) SyncReservationCar() error {
	res := s.Slot.Get()
	if res.Car == nil {
		return nil
	}

	available, err := s.Store.GetAvailability(res.Car.VIN)
	if err != nil {
		return fmt.Errorf("sync job: checking availability for %s: %w", res.Car.VIN, err)
	}
	if available == res.Car.Available {
		return nil
	}

	logrus.Infof("Sync Job: car %s availability changed to %t, updating reservation snapshot", res.Car.VIN, available)
	res.Car.Available = available
	s.Slot.Put(res)
	return nil
}
