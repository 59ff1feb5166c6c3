package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"sales-forecaster/internal/models"
)

type Loader struct {
	logger        Logger
	timingTracker TimingTracker
}

func NewLoader(logger Logger, timingTracker TimingTracker) *Loader {
	return &Loader{
		logger:        logger,
		timingTracker: timingTracker,
	}
}

func (l *Loader) LoadFile(path string) (*models.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	return l.Load(filepath.Base(path), file)
}

func (l *Loader) Load(name string, reader io.Reader) (*models.Dataset, error) {
	start := time.Now()
	format := DetectFormat(name)

	timingCtx := l.timingTracker.StartTiming("load_" + string(format))
	defer l.timingTracker.EndTiming(timingCtx)

	l.logger.Debug("DatasetLoader", "loading dataset", map[string]interface{}{
		"name":   name,
		"format": format,
	})

	var (
		dataset *models.Dataset
		err     error
	)
	switch format {
	case FormatXLSX:
		dataset, err = l.loadWorkbook(name, reader)
	default:
		dataset, err = l.loadCSV(name, reader)
	}
	if err != nil {
		return nil, err
	}

	l.logger.Info("DatasetLoader", "dataset loaded", map[string]interface{}{
		"name":       name,
		"format":     format,
		"rows":       dataset.Len(),
		"columns":    dataset.Width(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return dataset, nil
}

func (l *Loader) loadCSV(name string, reader io.Reader) (*models.Dataset, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	return buildDataset(name, records)
}

// loadWorkbook reads the first sheet of an XLSX workbook.
func (l *Loader) loadWorkbook(name string, reader io.Reader) (*models.Dataset, error) {
	book, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyInput
	}

	// Raw values keep number formats like "#,##0.00" out of numeric cells.
	rows, err := book.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		records = append(records, row)
	}

	if len(sheets) > 1 {
		l.logger.Warning("DatasetLoader", "workbook has several sheets, using the first", map[string]interface{}{
			"sheet":  sheets[0],
			"sheets": len(sheets),
		})
	}

	return buildDataset(name, records)
}
