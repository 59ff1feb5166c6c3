package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"sales-forecaster/internal/models"
)

// Common interfaces used across pipeline components
type Logger interface {
	Debug(component string, message string, fields map[string]interface{})
	Info(component string, message string, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

type TimingTracker interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context)
}

var ErrEmptyInput = errors.New("no columns to parse from file")

const utf8BOM = "\uFEFF"

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks the parser from the file extension. Anything that is
// not a workbook is read as CSV.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// buildDataset turns raw records (header first) into a Dataset. Short rows
// are padded with empty cells; long rows are rejected.
func buildDataset(name string, records [][]string) (*models.Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := normalizeHeader(records[0])
	rows := make([][]string, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) > len(header) {
			return nil, fmt.Errorf("record %d: expected %d fields, saw %d", i+1, len(header), len(record))
		}
		row := make([]string, len(header))
		copy(row, record)
		rows = append(rows, row)
	}

	return models.NewDataset(name, header, rows)
}

// normalizeHeader names blank columns "Unnamed: <i>" and suffixes repeated
// names with ".1", ".2" and so on.
func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	seen := make(map[string]int, len(raw))

	for i, col := range raw {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		if col == "" {
			col = fmt.Sprintf("Unnamed: %d", i)
		}

		name := col
		if count, dup := seen[col]; dup {
			for {
				count++
				candidate := fmt.Sprintf("%s.%d", col, count)
				if _, taken := seen[candidate]; !taken {
					name = candidate
					seen[col] = count
					break
				}
			}
		}

		seen[name] = 0
		header[i] = name
	}

	return header
}
