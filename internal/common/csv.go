// Package common provides shared file helpers for the command-line tools.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/nexus-classifier/internal/logging"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns through `csv` tags.
func ReadCSVFile[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.WithField(logging.FieldInputFile, filePath).Info("Reading CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.WithField(logging.FieldCount, len(rows)).Debug("Successfully read CSV data")
	return rows, nil
}

// WriteCSVFile writes rows to csvFile with a header line, creating the parent
// directory when needed.
func WriteCSVFile[TCSVRow any](rows []TCSVRow, csvFile string, delimiter rune, logger logging.Logger) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Writing CSV file")

	if dir := filepath.Dir(csvFile); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	return nil
}

// ParseDelimiter returns the first rune of s, or DefaultDelimiter when s is empty.
func ParseDelimiter(s string) (rune, error) {
	runes := []rune(s)
	switch {
	case len(runes) == 0:
		return DefaultDelimiter, nil
	case len(runes) > 1 && s != `\t`:
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	case s == `\t`:
		return '\t', nil
	}
	if runes[0] == '"' || runes[0] == '\n' || runes[0] == '\r' {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return runes[0], nil
}
