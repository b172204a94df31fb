package main

import (
	"os"
	"time"

	"rentaride/internal/enrich"
	"rentaride/internal/unsplash"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	inputCSV  = "cars.csv"
	outputCSV = "cars_with_images.csv"
)

func main() {
	godotenv.Load()
	accessKey := os.Getenv("UNSPLASH_ACCESS_KEY")
	if accessKey == "" {
		logrus.Fatal("UNSPLASH_ACCESS_KEY not set")
	}

	client := unsplash.NewClient(accessKey)
	err := enrich.Run(client, enrich.Config{
		InputPath:  inputCSV,
		OutputPath: outputCSV,
		Delay:      time.Second,
	})
	if err != nil {
		logrus.Fatalf("Enrichment failed: %v", err)
	}
}
