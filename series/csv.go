package series

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CSVOptions configures CSV ingest.
//   - ValueColumn: header name of the observation column (default "y").
//   - IndexColumn: header name of an integer index column; empty means the
//     ordinal row number is used as the index.
//   - HasHeader:   whether the first row is a header (default true).
//   - Delimiter:   field delimiter (default ',').
//   - SkipRows:    rows to discard before reading the header.
type CSVOptions struct {
	ValueColumn string
	IndexColumn string
	HasHeader   bool
	Delimiter   rune
	SkipRows    int
}

// DefaultCSVOptions returns the options used when nil is passed to LoadCSV.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "problem opening series file %s", filename)
	}
	defer file.Close()

	s, err := LoadCSVFromReader(file, opts)

	return s, errors.Wrapf(err, "problem reading series from %s", filename)
}

// LoadCSVFromReader loads a series from an io.Reader of CSV data.
// The resulting series satisfies Check or an error is returned.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "problem skipping leading rows")
		}
	}

	valueIdx, indexIdx := 0, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, errors.Wrap(err, "problem reading header row")
		}

		valueIdx = -1
		for i, h := range header {
			h = strings.TrimSpace(h)
			switch {
			case h == opts.ValueColumn:
				valueIdx = i
			case opts.IndexColumn != "" && h == opts.IndexColumn:
				indexIdx = i
			}
		}
		if valueIdx == -1 {
			// fall back to the last column, matching common "ds,y" layouts
			valueIdx = len(header) - 1
		}
	}

	var (
		index  []int
		values []float64
	)
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "problem reading record %d", row)
		}
		if valueIdx >= len(record) {
			return nil, errors.Errorf("record %d has no value column %d", row, valueIdx)
		}

		val, err := strconv.ParseFloat(strings.TrimSpace(record[valueIdx]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "problem parsing value in record %d", row)
		}

		label := row
		if indexIdx >= 0 {
			if indexIdx >= len(record) {
				return nil, errors.Errorf("record %d has no index column %d", row, indexIdx)
			}
			label, err = strconv.Atoi(strings.TrimSpace(record[indexIdx]))
			if err != nil {
				return nil, errors.Wrapf(err, "problem parsing index in record %d", row)
			}
		}

		index = append(index, label)
		values = append(values, val)
	}

	s := &Series{Index: index, Values: values}
	if err := Check(s); err != nil {
		return nil, errors.Wrap(err, "loaded series failed validation")
	}

	return s, nil
}

// SaveCSV writes the series to filename as "index,y" rows with a header.
func SaveCSV(s *Series, filename string) error {
	if err := Check(s); err != nil {
		return errors.Wrap(err, "refusing to save invalid series")
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "problem creating series file %s", filename)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	if _, err = writer.WriteString("index,y\n"); err != nil {
		return errors.Wrap(err, "problem writing header")
	}
	for i, v := range s.Values {
		line := strconv.Itoa(s.Index[i]) + "," + strconv.FormatFloat(v, 'f', -1, 64) + "\n"
		if _, err = writer.WriteString(line); err != nil {
			return errors.Wrapf(err, "problem writing record %d", i)
		}
	}

	return nil
}
