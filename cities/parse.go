package cities

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/tourstate/tsp"
)

// ParseOption customizes Parse and Load.
type ParseOption func(*parseConfig)

type parseConfig struct {
	delimiter rune
	header    bool
}

const defaultDelimiter = ','

// CheckDelimiter reports whether d can separate fields: '#' starts a
// comment, '"' quotes a field, line breaks end a record.
func CheckDelimiter(d rune) error {
	switch d {
	case '#', '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("%q: %w", d, ErrBadDelimiter)
	}
	return nil
}

// WithDelimiter sets the field separator. Panics when CheckDelimiter rejects
// d; validate user input with CheckDelimiter first.
func WithDelimiter(d rune) ParseOption {
	if err := CheckDelimiter(d); err != nil {
		panic(fmt.Sprintf("cities: WithDelimiter(%q)", d))
	}
	return func(c *parseConfig) {
		c.delimiter = d
	}
}

// WithHeader skips the first record.
func WithHeader(header bool) ParseOption {
	return func(c *parseConfig) {
		c.header = header
	}
}

// Parse reads all records from r. Name validation (uniqueness, non-empty) is
// left to tsp.New.
//
// Errors: ErrMalformedRecord, ErrBadCoordinate, both wrapped with the line
// number, or the reader's own error.
func Parse(r io.Reader, opts ...ParseOption) ([]tsp.City, error) {
	cfg := parseConfig{delimiter: defaultDelimiter}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.delimiter
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		out    []tsp.City
		first  = true
		record []string
		line   int
		err    error
		city   tsp.City
	)
	for {
		record, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cities: %w", err)
		}
		line, _ = cr.FieldPos(0)
		if first && cfg.header {
			first = false
			continue
		}
		first = false

		city, err = parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, city)
	}
	return out, nil
}

// Load opens path and parses it.
func Load(path string, opts ...ParseOption) ([]tsp.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func parseRecord(record []string) (tsp.City, error) {
	if len(record) != 3 {
		return tsp.City{}, fmt.Errorf("%d fields, want 3: %w", len(record), ErrMalformedRecord)
	}
	name := strings.TrimSpace(record[0])

	var (
		xy  [2]float64
		i   int
		err error
	)
	for i = 0; i < 2; i++ {
		xy[i], err = strconv.ParseFloat(strings.TrimSpace(record[i+1]), 64)
		if err != nil {
			return tsp.City{}, fmt.Errorf("city %q: %q: %w", name, record[i+1], ErrBadCoordinate)
		}
	}
	return tsp.City{Name: name, X: xy[0], Y: xy[1]}, nil
}
