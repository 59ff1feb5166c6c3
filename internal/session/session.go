package session

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"sales-forecaster/internal/logger"
	"sales-forecaster/internal/models"
	"sales-forecaster/internal/pipeline"
)

// ExportPath is where Export writes, relative to the working directory.
const ExportPath = "forecast_output.csv"

// Session owns the current dataset and the last forecast for the lifetime
// of the application window. A nil field means the value is absent.
type Session struct {
	mu       sync.RWMutex
	id       string
	dataset  *models.Dataset
	forecast *models.ForecastResult

	loader pipeline.DatasetLoader
	saver  pipeline.DatasetSaver
	logger logger.Logger
}

func New(loader pipeline.DatasetLoader, saver pipeline.DatasetSaver, log logger.Logger) *Session {
	s := &Session{
		id:     uuid.NewString(),
		loader: loader,
		saver:  saver,
		logger: log,
	}

	log.Debug("Session", "session created", map[string]interface{}{"session_id": s.id})
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.dataset == nil:
		return models.StateNoData
	case s.forecast == nil:
		return models.StateLoaded
	default:
		return models.StateForecasted
	}
}

func (s *Session) Dataset() (*models.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset, s.dataset != nil
}

func (s *Session) LastForecast() (*models.ForecastResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forecast, s.forecast != nil
}

// Load parses reader into a new dataset and replaces the current one. On
// failure the session keeps whatever it held before.
func (s *Session) Load(name string, reader io.Reader) (*models.Dataset, error) {
	dataset, err := s.loader.Load(name, reader)
	if err != nil {
		s.logger.Error("Session", err, map[string]interface{}{
			"session_id": s.id,
			"source":     name,
		})
		return nil, &LoadError{Source: name, Err: err}
	}

	s.replace(dataset)
	return dataset, nil
}

func (s *Session) LoadFile(path string) (*models.Dataset, error) {
	dataset, err := s.loader.LoadFile(path)
	if err != nil {
		s.logger.Error("Session", err, map[string]interface{}{
			"session_id": s.id,
			"source":     path,
		})
		return nil, &LoadError{Source: filepath.Base(path), Err: err}
	}

	s.replace(dataset)
	return dataset, nil
}

func (s *Session) replace(dataset *models.Dataset) {
	s.mu.Lock()
	s.dataset = dataset
	s.forecast = nil
	s.mu.Unlock()

	s.logger.Info("Session", "dataset replaced", map[string]interface{}{
		"session_id": s.id,
		"source":     dataset.Name,
		"rows":       dataset.Len(),
		"columns":    dataset.Columns(),
	})
}

// Clear drops the dataset and forecast. Calling it on an empty session is a no-op.
func (s *Session) Clear() {
	s.mu.Lock()
	hadData := s.dataset != nil
	s.dataset = nil
	s.forecast = nil
	s.mu.Unlock()

	s.logger.Info("Session", "session cleared", map[string]interface{}{
		"session_id": s.id,
		"had_data":   hadData,
	})
}

// GenerateForecast validates the dataset and builds the mock forecast.
func (s *Session) GenerateForecast() (*models.ForecastResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := forecastFor(s.dataset)
	if err != nil {
		s.logger.Warning("Session", "forecast rejected", map[string]interface{}{
			"session_id": s.id,
			"reason":     err.Error(),
		})
		return nil, err
	}

	s.forecast = result
	s.logger.Info("Session", "forecast generated", map[string]interface{}{
		"session_id": s.id,
		"points":     result.Len(),
		"offset":     models.ForecastOffset,
	})

	return result, nil
}

func forecastFor(dataset *models.Dataset) (*models.ForecastResult, error) {
	if dataset == nil {
		return nil, &ValidationError{Missing: RequiredColumns, Err: ErrNoData}
	}
	if missing := dataset.MissingColumns(RequiredColumns...); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}
	if dataset.Len() == 0 {
		return nil, &ValidationError{Reason: "dataset has no rows"}
	}

	sales, _ := dataset.Column(models.SalesColumn)
	actual, err := models.ParseSeries(sales)
	if err != nil {
		return nil, &ValidationError{Reason: "Sales column must be numeric", Err: err}
	}

	present := 0
	for _, obs := range actual {
		if obs.Finite() {
			present++
		}
	}
	if present == 0 {
		return nil, &ValidationError{Reason: "Sales column has no values"}
	}

	return models.BuildForecast(actual), nil
}

// Export writes the current dataset, not the forecast, to ExportPath.
func (s *Session) Export() (string, error) {
	s.mu.RLock()
	dataset := s.dataset
	s.mu.RUnlock()

	if dataset == nil {
		s.logger.Warning("Session", "export requested without data", map[string]interface{}{
			"session_id": s.id,
		})
		return "", ErrNoData
	}

	if err := s.saver.SaveToPath(ExportPath, dataset); err != nil {
		s.logger.Error("Session", err, map[string]interface{}{
			"session_id": s.id,
			"path":       ExportPath,
		})
		return "", &ExportError{Path: ExportPath, Err: err}
	}

	s.logger.Info("Session", "dataset exported", map[string]interface{}{
		"session_id": s.id,
		"path":       ExportPath,
		"rows":       dataset.Len(),
	})
	return ExportPath, nil
}
