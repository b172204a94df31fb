// Package enrich adds an Image column to a semicolon-delimited car
// file by looking each row up against a photo search API.
package enrich

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Searcher is the photo lookup: one query in, zero or one URL out.
type Searcher interface {
	SearchPhoto(query string) (string, error)
}

// ErrMissingColumn means the input header lacks one of the required
// Brand, CarType, CarModel columns.
var ErrMissingColumn = errors.New("missing required column")

type Config struct {
	InputPath  string
	OutputPath string
	Delay      time.Duration // pause between lookups, for the API rate limit
}

// Run reads every row, queries one image per row sequentially, and
// writes all rows with the appended Image column. Only an unreadable or
// malformed input aborts the run before any output exists; a failed or
// empty lookup degrades that single row to Image="".
func Run(searcher Searcher, cfg Config) error {
	input, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("reading input file %s: %w", cfg.InputPath, err)
	}
	defer input.Close()

	reader := csv.NewReader(input)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parsing input file %s: %w", cfg.InputPath, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("input file %s: %w: empty file, header row required", cfg.InputPath, ErrMissingColumn)
	}

	header := records[0]
	columns := map[string]int{}
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"Brand", "CarType", "CarModel"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("input file %s: %w: %s", cfg.InputPath, ErrMissingColumn, required)
		}
	}

	rows := records[1:]
	images := make([]string, len(rows))
	for i, row := range rows {
		brand := row[columns["Brand"]]
		carType := row[columns["CarType"]]
		carModel := row[columns["CarModel"]]

		query := fmt.Sprintf("Car %s %s %s", brand, carType, carModel)
		imageURL, err := searcher.SearchPhoto(query)
		switch {
		case err != nil:
			logrus.Warnf("Image lookup failed for %s %s: %v", brand, carModel, err)
		case imageURL == "":
			logrus.Warnf("No image found for %s %s", brand, carModel)
		default:
			logrus.Infof("Found image for %s %s", brand, carModel)
		}
		images[i] = imageURL

		time.Sleep(cfg.Delay)
	}

	output, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", cfg.OutputPath, err)
	}
	defer output.Close()

	writer := csv.NewWriter(output)
	writer.Comma = ';'
	if err := writer.Write(append(append([]string{}, header...), "Image")); err != nil {
		return fmt.Errorf("writing output header: %w", err)
	}
	for i, row := range rows {
		if err := writer.Write(append(append([]string{}, row...), images[i])); err != nil {
			return fmt.Errorf("writing output row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing output file: %w", err)
	}

	logrus.Infof("Done! Output written to %s", cfg.OutputPath)
	return nil
}
