package service

import (
	"rentaride/internal/catalog"
	"rentaride/internal/db"
	"rentaride/internal/session"

	"github.com/sirupsen/logrus"
)

// CarStore is the slice of the record store the services consume.
type CarStore interface {
	ListCars() ([]db.Car, error)
	GetCarByVIN(vin string) (*db.Car, error)
	GetAvailability(vin string) (bool, error)
	Reserve(vin string) error
}

type CatalogState string

const (
	CatalogLoaded CatalogState = "loaded"
	CatalogError  CatalogState = "error"
)

// CatalogSnapshot is what one catalog visit renders: the full fetched
// set plus the filtered list seeded from it. On fetch failure State is
// CatalogError and Message carries the inline text; the view survives.
type CatalogSnapshot struct {
	State    CatalogState `json:"state"`
	Cars     []db.Car     `json:"cars"`
	Filtered []db.Car     `json:"filteredCars"`
	Message  string       `json:"message,omitempty"`
}

type CatalogService struct {
	Store CarStore
	Slot  *session.ReservationSlot
}

func NewCatalogService(store CarStore, slot *session.ReservationSlot) *CatalogService {
	return &CatalogService{Store: store, Slot: slot}
}

// Fetch loads the catalog, brand-ordered. Each fetch also refreshes the
// persisted reservation's car snapshot when its availability drifted
// from the backend row.
func (s *CatalogService) Fetch() CatalogSnapshot {
	cars, err := s.Store.ListCars()
	if err != nil {
		logrus.Errorf("catalog: listing cars: %v", err)
		return CatalogSnapshot{State: CatalogError, Message: "Error loading cars"}
	}
	s.syncReservationCar(cars)
	return CatalogSnapshot{State: CatalogLoaded, Cars: cars, Filtered: cars}
}

// SearchSubmit is the explicit submit pass: both predicates composed
// over a fresh fetch.
func (s *CatalogService) SearchSubmit(searchTerm, filterTerm string, mode catalog.FilterMode) CatalogSnapshot {
	snap := s.Fetch()
	if snap.State != CatalogLoaded {
		return snap
	}
	snap.Filtered = catalog.Apply(snap.Cars, searchTerm, filterTerm, mode)
	return snap
}

// Suggest returns suggestion terms for the current search text. Typing
// goes through here without touching any filtered result.
func (s *CatalogService) Suggest(text string) []string {
	cars, err := s.Store.ListCars()
	if err != nil {
		logrus.Errorf("catalog: listing cars for suggestions: %v", err)
		return nil
	}
	return catalog.Suggestions(cars, text)
}

func (s *CatalogService) syncReservationCar(cars []db.Car) {
	res := s.Slot.Get()
	if res.Car == nil {
		return
	}
	for _, c := range cars {
		if c.VIN == res.Car.VIN {
			if c.Available != res.Car.Available {
				res.Car.Available = c.Available
				s.Slot.Put(res)
			}
			return
		}
	}
}
