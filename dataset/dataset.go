// Package dataset reads the values given to a line graph from strings, csv
// files and remote locations.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/linechart"
)

var ErrColumn = errors.New("invalid column")

// Parse reads a list of numbers separated by commas, optionally enclosed in
// brackets, eg "[1, 2.5, -3]". Every item must be a finite number.
func Parse(str string) ([]float64, error) {
	str = strings.TrimSpace(str)
	if strings.HasPrefix(str, "[") != strings.HasSuffix(str, "]") {
		return nil, fmt.Errorf("%w: unbalanced brackets", linechart.ErrInvalidDataset)
	}
	str = strings.TrimSuffix(strings.TrimPrefix(str, "["), "]")
	if strings.TrimSpace(str) == "" {
		return nil, fmt.Errorf("%w: no values", linechart.ErrInvalidDataset)
	}
	var list []float64
	for i, item := range strings.Split(str, ",") {
		f, err := parseValue(item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %s", linechart.ErrInvalidDataset, i, err)
		}
		list = append(list, f)
	}
	return list, nil
}

// Column selects the values of a csv file.
type Column struct {
	Index  int
	Header bool
}

// ReadCSV reads the values found in the selected column of every record.
func ReadCSV(r io.Reader, col Column) ([]float64, error) {
	if col.Index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrColumn, col.Index)
	}
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if col.Header {
		if _, err := rs.Read(); err != nil {
			return nil, err
		}
	}
	var list []float64
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if col.Index >= len(row) {
			line, _ := rs.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has no column %d", ErrColumn, line, col.Index)
		}
		f, err := parseValue(row[col.Index])
		if err != nil {
			line, _ := rs.FieldPos(col.Index)
			return nil, fmt.Errorf("%w: line %d: %s", linechart.ErrInvalidDataset, line, err)
		}
		list = append(list, f)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no values", linechart.ErrInvalidDataset)
	}
	return list, nil
}

// Load reads the dataset stored at location, a path or an http(s) url. Files
// ending with .csv are read with ReadCSV, others with Parse.
func Load(location string, col Column) ([]float64, error) {
	r, err := readFrom(location)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if strings.EqualFold(filepath.Ext(location), ".csv") {
		return ReadCSV(r, col)
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(buf))
}

func parseValue(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, fmt.Errorf("empty value")
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: not a number", str)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q: not a finite number", str)
	}
	return f, nil
}

func readFrom(location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		res, err := http.Get(u.String())
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("%s: request does not end with success result code (%d)", location, res.StatusCode)
		}
		return res.Body, nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}
