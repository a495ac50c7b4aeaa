package tearsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// CSV encoding of return series. The format is two columns, "date,return",
// dates in ISO-8601, returns as plain decimals (0.0123 for 1.23%). An
// optional header line is tolerated on read and always written.

// ReadSeries decodes a return series from CSV. Rows that fail to parse
// are reported with their line number; a leading header row is skipped.
func ReadSeries(r io.Reader) (*Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	s := NewSeries()
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading series: %w", err)
		}
		line++
		on, err := ParseDate(rec[0])
		if err != nil {
			if line == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		// decimal parsing rejects the garbage strconv would accept (1e999, "0x1p2")
		val, err := decimal.NewFromString(rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid return %q: %w", line, rec[1], err)
		}
		s.Append(on, val.InexactFloat64())
	}
	return s, nil
}

// ReadSeriesFile reads a return series from a CSV file.
func ReadSeriesFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening series file: %w", err)
	}
	defer f.Close()
	s, err := ReadSeries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WriteSeries encodes a return series to CSV with a header row.
func WriteSeries(w io.Writer, s *Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "return"}); err != nil {
		return err
	}
	for d, r := range s.Points() {
		if err := cw.Write([]string{d.String(), decimal.NewFromFloat(r).String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSeriesFile writes a return series to a CSV file.
func WriteSeriesFile(path string, s *Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating series file: %w", err)
	}
	defer f.Close()
	if err := WriteSeries(f, s); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
