package gui

import (
	"image"

	"sales-forecaster/internal/gui/components"
	"sales-forecaster/internal/logger"
	"sales-forecaster/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const (
	PlotWidth  = 700
	PlotHeight = 400
)

// Manager owns the widgets of the main window. All methods must be called
// from the Fyne event goroutine.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	toolbar      *components.Toolbar
	tablePreview *components.TablePreview
	plotDisplay  *components.PlotDisplay
	statusBar    *components.StatusBar

	mainContainer *fyne.Container
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	manager := &Manager{
		window:       window,
		logger:       log,
		toolbar:      components.NewToolbar(),
		tablePreview: components.NewTablePreview(),
		plotDisplay:  components.NewPlotDisplay(PlotWidth, PlotHeight),
		statusBar:    components.NewStatusBar(),
	}

	content := container.NewVSplit(
		manager.tablePreview.GetContainer(),
		manager.plotDisplay.GetContainer(),
	)
	content.SetOffset(0.45)

	manager.mainContainer = container.NewBorder(
		manager.toolbar.GetContainer(),
		manager.statusBar.GetContainer(),
		nil, nil,
		content,
	)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"plot_width":  PlotWidth,
		"plot_height": PlotHeight,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.mainContainer
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetUploadHandler(handler func()) {
	m.toolbar.SetUploadHandler(func() {
		m.logger.Debug("GUIManager", "upload requested", nil)
		handler()
	})
}

func (m *Manager) SetClearHandler(handler func()) {
	m.toolbar.SetClearHandler(func() {
		m.logger.Debug("GUIManager", "clear requested", nil)
		handler()
	})
}

func (m *Manager) SetForecastHandler(handler func()) {
	m.toolbar.SetForecastHandler(func() {
		m.logger.Debug("GUIManager", "forecast requested", nil)
		handler()
	})
}

func (m *Manager) SetExportHandler(handler func()) {
	m.toolbar.SetExportHandler(func() {
		m.logger.Debug("GUIManager", "export requested", nil)
		handler()
	})
}

func (m *Manager) ShowDataset(dataset *models.Dataset) {
	m.tablePreview.SetDataset(dataset)
	m.toolbar.SetFilename(dataset.Name)
	m.logger.Debug("GUIManager", "table preview updated", map[string]interface{}{
		"rows":    dataset.Len(),
		"columns": dataset.Width(),
	})
}

func (m *Manager) ClearDataset() {
	m.tablePreview.Clear()
	m.toolbar.ResetFilename()
}

func (m *Manager) ShowPlot(img image.Image) {
	replaced := m.plotDisplay.HasPlot()
	m.plotDisplay.SetPlot(img)
	m.logger.Debug("GUIManager", "plot set", map[string]interface{}{
		"bounds":   img.Bounds().String(),
		"replaced": replaced,
	})
}

func (m *Manager) ClearPlot() {
	m.plotDisplay.Clear()
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) ResetStatus() {
	m.statusBar.Reset()
}

func (m *Manager) Status() string {
	return m.statusBar.Status()
}

func (m *Manager) Filename() string {
	return m.toolbar.Filename()
}

func (m *Manager) PreviewRowCount() int {
	return m.tablePreview.RowCount()
}

func (m *Manager) PreviewColumnCount() int {
	return m.tablePreview.ColumnCount()
}

func (m *Manager) HasPlot() bool {
	return m.plotDisplay.HasPlot()
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, m.window)
}

func (m *Manager) ShowWarning(title, message string) {
	m.logger.Warning("GUIManager", message, map[string]interface{}{
		"title": title,
	})
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
