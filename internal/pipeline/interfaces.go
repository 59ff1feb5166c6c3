package pipeline

import (
	"io"

	"sales-forecaster/internal/models"
)

// DatasetLoader reads tabular files into a Dataset
type DatasetLoader interface {
	Load(name string, reader io.Reader) (*models.Dataset, error)
	LoadFile(path string) (*models.Dataset, error)
}

// DatasetSaver writes a Dataset as CSV
type DatasetSaver interface {
	SaveToWriter(writer io.Writer, dataset *models.Dataset) error
	SaveToPath(path string, dataset *models.Dataset) error
}
