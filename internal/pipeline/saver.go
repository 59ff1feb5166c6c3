package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"sales-forecaster/internal/models"
)

type Saver struct {
	logger        Logger
	timingTracker TimingTracker
}

func NewSaver(logger Logger, timingTracker TimingTracker) *Saver {
	return &Saver{
		logger:        logger,
		timingTracker: timingTracker,
	}
}

// SaveToWriter writes the header row followed by every data row. No index
// column is written.
func (s *Saver) SaveToWriter(writer io.Writer, dataset *models.Dataset) error {
	if dataset == nil {
		return fmt.Errorf("no dataset to save")
	}

	w := csv.NewWriter(writer)
	if err := w.Write(dataset.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(dataset.Records()); err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	return nil
}

// SaveToPath creates or truncates path and writes the dataset to it.
func (s *Saver) SaveToPath(path string, dataset *models.Dataset) error {
	if dataset == nil {
		return fmt.Errorf("no dataset to save")
	}

	timingCtx := s.timingTracker.StartTiming("save_csv")
	defer s.timingTracker.EndTiming(timingCtx)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	if err := s.SaveToWriter(file, dataset); err != nil {
		file.Close()
		s.logger.Error("DatasetSaver", err, map[string]interface{}{"path": path})
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	s.logger.Info("DatasetSaver", "dataset saved", map[string]interface{}{
		"path": path,
		"rows": dataset.Len(),
	})

	return nil
}
