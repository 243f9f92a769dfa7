package params

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"platform-projections/internal/model"
)

// FileSource loads observations from a file on disk. The format is chosen
// by extension: .csv expects an input,month,value header; .json expects a
// {"observations": [...]} document.
type FileSource struct {
	Path string
}

func (f FileSource) Observations() ([]model.Observation, error) {
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".csv":
		return readCSV(f.Path)
	case ".json":
		return readJSON(f.Path)
	default:
		return nil, fmt.Errorf("unsupported parameter file %q (want .csv or .json)", f.Path)
	}
}

type csvColumns struct {
	input, month, value int
}

// columnIndex locates the three required columns by header name,
// case-insensitively. "input_type" is accepted for "input" because the
// legacy workbook exports that header.
func columnIndex(header []string) (csvColumns, error) {
	cols := csvColumns{input: -1, month: -1, value: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "input", "input_type", "inputtype":
			cols.input = i
		case "month":
			cols.month = i
		case "value":
			cols.value = i
		}
	}
	if cols.input < 0 || cols.month < 0 || cols.value < 0 {
		return cols, fmt.Errorf("header must name input, month and value columns, got %v", header)
	}
	return cols, nil
}

func readCSV(path string) ([]model.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var obs []model.Observation
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		month, err := strconv.Atoi(strings.TrimSpace(rec[cols.month]))
		if err != nil {
			return nil, fmt.Errorf("line %d: month: %w", line, err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.value]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: value: %w", line, err)
		}
		obs = append(obs, model.Observation{
			Input: strings.TrimSpace(rec[cols.input]),
			Month: month,
			Value: value,
		})
	}
	return obs, nil
}
