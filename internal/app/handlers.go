package app

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"sales-forecaster/internal/gui"
	"sales-forecaster/internal/logger"
	"sales-forecaster/internal/models"
	"sales-forecaster/internal/pipeline"
	"sales-forecaster/internal/session"
)

const (
	StatusLoaded       = "CSV Loaded Successfully"
	StatusLoadFailed   = "Error loading file"
	StatusForecasting  = "Forecasting... (mock data)"
	StatusPlotFailed   = "Failed to draw forecast"
	StatusExported     = "Forecast exported successfully"
	StatusExportFailed = "Failed to export forecast"

	errorTitle       = "Error"
	exportErrorTitle = "Export Error"
	exportedTitle    = "Exported"
	noDataTitle      = "No Data"
	noDataMessage    = "Please load and forecast data first."
)

var uploadExtensions = []string{".csv", ".xlsx"}

// ChartRenderer turns a forecast into the image shown in the plot area.
type ChartRenderer interface {
	Render(result *models.ForecastResult) (image.Image, error)
}

// Handlers binds toolbar actions to the session and refreshes the views
// after each one. Every handler runs to completion on the event goroutine.
type Handlers struct {
	session    *session.Session
	guiManager *gui.Manager
	renderer   ChartRenderer
	logger     logger.Logger
}

func NewHandlers(s *session.Session, gm *gui.Manager, r ChartRenderer, log logger.Logger) *Handlers {
	return &Handlers{
		session:    s,
		guiManager: gm,
		renderer:   r,
		logger:     log,
	}
}

func (h *Handlers) HandleUpload() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.guiManager.ShowError(errorTitle, err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		h.LoadFrom(reader.URI().Name(), reader)
	}, h.guiManager.GetWindow())

	d.SetFilter(storage.NewExtensionFileFilter(uploadExtensions))
	d.Show()
}

// LoadFrom replaces the session dataset and refreshes the preview. A failed
// load leaves the current table and plot as they were.
func (h *Handlers) LoadFrom(name string, reader io.Reader) {
	dataset, err := h.session.Load(name, reader)
	if err != nil {
		h.guiManager.ShowError(errorTitle, fmt.Errorf("%s\n%w", loadFailureMessage(name), err))
		h.guiManager.UpdateStatus(StatusLoadFailed)
		return
	}

	h.guiManager.ShowDataset(dataset)
	h.guiManager.ClearPlot()
	h.guiManager.UpdateStatus(StatusLoaded)
}

// loadFailureMessage names the file format the user picked.
func loadFailureMessage(name string) string {
	return fmt.Sprintf("Failed to load %s:", strings.ToUpper(string(pipeline.DetectFormat(name))))
}

func (h *Handlers) HandleClear() {
	h.session.Clear()
	h.guiManager.ClearDataset()
	h.guiManager.ClearPlot()
	h.guiManager.ResetStatus()
}

func (h *Handlers) HandleForecast() {
	result, err := h.session.GenerateForecast()
	if err != nil {
		h.guiManager.ShowError(errorTitle, err)
		return
	}

	h.guiManager.UpdateStatus(StatusForecasting)

	img, err := h.renderer.Render(result)
	if err != nil {
		h.guiManager.ClearPlot()
		h.guiManager.ShowError(errorTitle, err)
		h.guiManager.UpdateStatus(StatusPlotFailed)
		return
	}
	h.guiManager.ShowPlot(img)
}

func (h *Handlers) HandleExport() {
	path, err := h.session.Export()
	switch {
	case errors.Is(err, session.ErrNoData):
		h.guiManager.ShowWarning(noDataTitle, noDataMessage)
		return
	case err != nil:
		h.guiManager.ShowError(exportErrorTitle, err)
		h.guiManager.UpdateStatus(StatusExportFailed)
		return
	}

	h.guiManager.ShowInfo(exportedTitle, fmt.Sprintf("Forecast exported to %s", path))
	h.guiManager.UpdateStatus(StatusExported)
}
