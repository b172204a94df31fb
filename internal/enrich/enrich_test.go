package enrich

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searcherFunc func(query string) (string, error)

func (f searcherFunc) SearchPhoto(query string) (string, error) { return f(query) }

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cars.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readOutput(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

const sampleInput = "Brand;CarType;CarModel;Mileage\n" +
	"Audi;Sedan;A4;12000 km\n" +
	"Fiat;Compact;500;8000 km\n"

func TestRunAppendsImageColumn(t *testing.T) {
	input := writeInput(t, sampleInput)
	output := filepath.Join(filepath.Dir(input), "out.csv")

	var queries []string
	searcher := searcherFunc(func(query string) (string, error) {
		queries = append(queries, query)
		return "https://img.example/" + query, nil
	})

	require.NoError(t, Run(searcher, Config{InputPath: input, OutputPath: output}))

	records := readOutput(t, output)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Brand", "CarType", "CarModel", "Mileage", "Image"}, records[0],
		"original column order preserved, Image appended")
	assert.Equal(t, "https://img.example/Car Audi Sedan A4", records[1][4])
	assert.Equal(t, []string{"Car Audi Sedan A4", "Car Fiat Compact 500"}, queries)
}

func TestRowWithoutResultsDegradesNotTheRun(t *testing.T) {
	input := writeInput(t, sampleInput)
	output := filepath.Join(filepath.Dir(input), "out.csv")

	searcher := searcherFunc(func(query string) (string, error) {
		if query == "Car Audi Sedan A4" {
			return "", nil // zero search results
		}
		return "https://img.example/fiat", nil
	})

	require.NoError(t, Run(searcher, Config{InputPath: input, OutputPath: output}))

	records := readOutput(t, output)
	require.Len(t, records, 3)
	assert.Equal(t, "", records[1][4])
	assert.Equal(t, "https://img.example/fiat", records[2][4])
	assert.Equal(t, "12000 km", records[1][3], "other columns pass through unchanged")
}

func TestLookupErrorDegradesRow(t *testing.T) {
	input := writeInput(t, sampleInput)
	output := filepath.Join(filepath.Dir(input), "out.csv")

	searcher := searcherFunc(func(query string) (string, error) {
		return "", errors.New("rate limited")
	})

	require.NoError(t, Run(searcher, Config{InputPath: input, OutputPath: output}))
	records := readOutput(t, output)
	assert.Equal(t, "", records[1][4])
	assert.Equal(t, "", records[2][4])
}

func TestUnreadableInputAbortsBeforeOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.csv")

	searcher := searcherFunc(func(string) (string, error) { return "", nil })
	err := Run(searcher, Config{InputPath: filepath.Join(dir, "missing.csv"), OutputPath: output})
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no partial output file")
}

func TestMissingRequiredColumn(t *testing.T) {
	input := writeInput(t, "Brand;CarModel\nAudi;A4\n")
	output := filepath.Join(filepath.Dir(input), "out.csv")

	searcher := searcherFunc(func(string) (string, error) { return "", nil })
	err := Run(searcher, Config{InputPath: input, OutputPath: output})
	assert.ErrorIs(t, err, ErrMissingColumn)
}
