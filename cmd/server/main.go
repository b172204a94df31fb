package main

import (
	"database/sql"
	"net/http"
	"os"

	"rentaride/internal/api"
	"rentaride/internal/repository"
	"rentaride/internal/service"
	"rentaride/internal/session"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logrus.Fatal("DATABASE_URL not set")
	}
	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		logrus.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		logrus.Fatalf("Failed to connect to DB: %v", err)
	}

	sessionPath := os.Getenv("SESSION_DB_PATH")
	if sessionPath == "" {
		sessionPath = "data/session"
	}
	store, err := session.Open(sessionPath)
	if err != nil {
		logrus.Fatalf("Failed to open session store: %v", err)
	}
	defer store.Close()
	slot := session.NewReservationSlot(store.NewClient())

	repo := repository.NewCarRepository(database)
	sender := service.NewSenderService()
	catalogSvc := service.NewCatalogService(repo, slot)
	reservationSvc := service.NewReservationService(repo, slot, sender)
	jobSvc := service.NewJobService(repo, session.NewReservationSlot(store.NewClient()))

	// The sync job writes through its own store client; watching the
	// slot from the API side surfaces those background updates in logs.
	slot.OnChange(func() {
		logrus.Debug("reservation slot updated by another writer")
	})

	catalogHandler := api.NewCatalogHandler(catalogSvc)
	reservationHandler := api.NewReservationHandler(reservationSvc)

	r := mux.NewRouter()

	r.Handle("/", http.RedirectHandler("/api/cars", http.StatusFound)).Methods("GET")
	r.HandleFunc("/reservation", reservationHandler.GetReservation).Methods("GET")

	r.HandleFunc("/api/cars", catalogHandler.ListCars).Methods("GET")
	r.HandleFunc("/api/catalog/search", catalogHandler.Search).Methods("POST")
	r.HandleFunc("/api/catalog/suggestions", catalogHandler.Suggestions).Methods("GET")

	r.HandleFunc("/api/reservation", reservationHandler.GetReservation).Methods("GET")
	r.HandleFunc("/api/reservation/car", reservationHandler.RentNow).Methods("POST")
	r.HandleFunc("/api/reservation/car", reservationHandler.Cancel).Methods("DELETE")
	r.HandleFunc("/api/reservation/form", reservationHandler.UpdateForm).Methods("PUT")
	r.HandleFunc("/api/reservation/submit", reservationHandler.Submit).Methods("POST")
	r.HandleFunc("/api/reservation/confirm", reservationHandler.Confirm).Methods("POST")

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 1m", func() {
		if err := jobSvc.SyncReservationCar(); err != nil {
			logrus.Errorf("Sync job failed: %v", err)
		}
	}); err != nil {
		logrus.Fatalf("Failed to schedule sync job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Server running on port %s", port)
	logrus.Fatal(http.ListenAndServe(":"+port, cors(handlers.LoggingHandler(os.Stdout, r))))
}
