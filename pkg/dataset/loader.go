/*
Package dataset loads and saves country records.

Two on-disk formats are supported: a CSV flat file with the columns
name,population,area,continent (the header row is optional) and a
msgpack snapshot written by SaveSnapshot. Rows that fail validation are
dropped with a warning when the Store is built.
*/
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/countryq/pkg/country"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	fieldCount      = 4
	snapshotVersion = 1
)

var header = []string{"name", "population", "area", "continent"}

// ErrEmptyDataset is returned when a file produced no valid records.
var ErrEmptyDataset = errors.New("dataset contains no valid records")

// Snapshot is the msgpack envelope written by SaveSnapshot.
type Snapshot struct {
	Version int               `msgpack:"v"`
	Created int64             `msgpack:"t"`
	Records []country.Country `msgpack:"r"`
}

// Load reads path in whichever format it is in and builds a Store.
func Load(path string) (*country.Store, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer file.Close()

	var records []country.Country
	switch format {
	case FormatSnapshot:
		records, err = ReadSnapshot(file)
	default:
		records, err = ReadCSV(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	store := country.NewStore(records)
	if store.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}
	log.Debugf("Loaded %d records from %s (%s), dropped %d", store.Len(), path, format, store.Dropped())
	return store, nil
}

// ReadCSV parses CSV rows. Rows with the wrong column count or
// non-integer numbers are skipped with a warning.
func ReadCSV(r io.Reader) ([]country.Country, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records []country.Country
	line := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 && isHeader(row) {
			continue
		}
		c, err := parseRow(row)
		if err != nil {
			log.Warnf("Skipping line %d: %v", line, err)
			continue
		}
		records = append(records, c)
	}
	return records, nil
}

func isHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
	return err != nil && strings.EqualFold(strings.TrimSpace(row[0]), header[0])
}

func parseRow(row []string) (country.Country, error) {
	if len(row) != fieldCount {
		return country.Country{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(row))
	}
	pop, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
	if err != nil {
		return country.Country{}, fmt.Errorf("population %q: %w", row[1], err)
	}
	area, err := strconv.ParseInt(strings.TrimSpace(row[2]), 10, 64)
	if err != nil {
		return country.Country{}, fmt.Errorf("area %q: %w", row[2], err)
	}
	return country.Country{
		Name:       strings.TrimSpace(row[0]),
		Population: pop,
		Area:       area,
		Continent:  strings.TrimSpace(row[3]),
	}, nil
}

// ReadSnapshot decodes a msgpack snapshot.
func ReadSnapshot(r io.Reader) ([]country.Country, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	return snap.Records, nil
}

// WriteCSV writes records with a header row.
func WriteCSV(w io.Writer, records []country.Country) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range records {
		row := []string{
			c.Name,
			strconv.FormatInt(c.Population, 10),
			strconv.FormatInt(c.Area, 10),
			c.Continent,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSnapshot encodes records as a msgpack snapshot.
func WriteSnapshot(w io.Writer, records []country.Country) error {
	snap := Snapshot{
		Version: snapshotVersion,
		Created: time.Now().Unix(),
		Records: records,
	}
	return msgpack.NewEncoder(w).Encode(&snap)
}

// SaveCSV writes the store to path as CSV.
func SaveCSV(path string, store *country.Store) error {
	return save(path, store, WriteCSV)
}

// SaveSnapshot writes the store to path as a msgpack snapshot.
func SaveSnapshot(path string, store *country.Store) error {
	return save(path, store, WriteSnapshot)
}

func save(path string, store *country.Store, write func(io.Writer, []country.Country) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(file, store.All()); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	log.Debugf("Saved %d records to %s", store.Len(), path)
	return nil
}
