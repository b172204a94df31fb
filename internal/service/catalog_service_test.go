package service

import (
	"testing"

	"rentaride/internal/catalog"
	"rentaride/internal/db"
	apperrors "rentaride/internal/errors"
	"rentaride/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLoadedSeedsFiltered(t *testing.T) {
	store := newFakeCarStore(
		db.Car{VIN: "1", Brand: "Audi", Available: true},
		db.Car{VIN: "2", Brand: "BMW", Available: true},
	)
	svc := NewCatalogService(store, testSlot(t))

	snap := svc.Fetch()
	assert.Equal(t, CatalogLoaded, snap.State)
	assert.Len(t, snap.Cars, 2)
	assert.Equal(t, snap.Cars, snap.Filtered, "filtered list seeds from the full set")
	assert.Equal(t, "Audi", snap.Cars[0].Brand, "brand ascending")
}

func TestFetchErrorStateKeepsViewAlive(t *testing.T) {
	store := newFakeCarStore()
	store.listErr = apperrors.ErrStore
	svc := NewCatalogService(store, testSlot(t))

	snap := svc.Fetch()
	assert.Equal(t, CatalogError, snap.State)
	assert.NotEmpty(t, snap.Message)
	assert.Empty(t, snap.Cars)
}

func TestFetchEmptyCatalogIsNotAnError(t *testing.T) {
	svc := NewCatalogService(newFakeCarStore(), testSlot(t))

	snap := svc.Fetch()
	assert.Equal(t, CatalogLoaded, snap.State)
	assert.Empty(t, snap.Cars)
}

func TestSearchSubmitAppliesBothPasses(t *testing.T) {
	store := newFakeCarStore(
		db.Car{VIN: "1", Brand: "Audi", CarType: "Sedan", Available: true},
		db.Car{VIN: "2", Brand: "Audi", CarType: "SUV", Available: true},
		db.Car{VIN: "3", Brand: "BMW", CarType: "SUV", Available: true},
	)
	svc := NewCatalogService(store, testSlot(t))

	snap := svc.SearchSubmit("audi", "suv", catalog.FilterByCategory)
	require.Len(t, snap.Filtered, 1)
	assert.Equal(t, "2", snap.Filtered[0].VIN)
	assert.Len(t, snap.Cars, 3, "full set stays intact")
}

func TestFetchSyncsReservationCarAvailability(t *testing.T) {
	store := newFakeCarStore(db.Car{VIN: "1", Brand: "Audi", Available: false})
	slot := testSlot(t)

	res := session.DefaultReservation()
	res.Car = &db.Car{VIN: "1", Brand: "Audi", Available: true} // stale snapshot
	slot.Put(res)

	NewCatalogService(store, slot).Fetch()

	got := slot.Get()
	require.NotNil(t, got.Car)
	assert.False(t, got.Car.Available, "snapshot refreshed from the backend row")
}

func TestSyncJobUpdatesDriftedSnapshot(t *testing.T) {
	store := newFakeCarStore(db.Car{VIN: "1", Available: false})
	slot := testSlot(t)

	res := session.DefaultReservation()
	res.Car = &db.Car{VIN: "1", Available: true}
	slot.Put(res)

	job := NewJobService(store, slot)
	require.NoError(t, job.SyncReservationCar())
	assert.False(t, slot.Get().Car.Available)

	// No car selected: nothing to do, no error.
	slot.Put(session.DefaultReservation())
	assert.NoError(t, job.SyncReservationCar())
}
