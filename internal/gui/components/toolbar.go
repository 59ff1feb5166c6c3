package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const NoFileText = "No file selected"

// Toolbar holds the four session actions and the filename label.
type Toolbar struct {
	container      *fyne.Container
	UploadButton   *widget.Button
	ClearButton    *widget.Button
	ForecastButton *widget.Button
	ExportButton   *widget.Button
	filenameLabel  *widget.Label

	uploadHandler   func()
	clearHandler    func()
	forecastHandler func()
	exportHandler   func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	t.UploadButton = widget.NewButton("Upload CSV", t.onUpload)
	t.UploadButton.Importance = widget.HighImportance
	t.ClearButton = widget.NewButton("Clear", t.onClear)
	t.ForecastButton = widget.NewButton("Train and Forecast", t.onForecast)
	t.ExportButton = widget.NewButton("Export Forecast", t.onExport)

	t.filenameLabel = widget.NewLabel(NoFileText)
	t.filenameLabel.Importance = widget.LowImportance
	t.filenameLabel.Truncation = fyne.TextTruncateEllipsis

	buttons := container.NewHBox(
		t.UploadButton,
		t.ClearButton,
		t.ForecastButton,
		t.ExportButton,
	)

	t.container = container.NewPadded(
		container.NewBorder(nil, nil, buttons, nil, t.filenameLabel),
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetUploadHandler(handler func()) {
	t.uploadHandler = handler
}

func (t *Toolbar) SetClearHandler(handler func()) {
	t.clearHandler = handler
}

func (t *Toolbar) SetForecastHandler(handler func()) {
	t.forecastHandler = handler
}

func (t *Toolbar) SetExportHandler(handler func()) {
	t.exportHandler = handler
}

func (t *Toolbar) SetFilename(name string) {
	t.filenameLabel.SetText("Loaded: " + name)
}

func (t *Toolbar) ResetFilename() {
	t.filenameLabel.SetText(NoFileText)
}

func (t *Toolbar) Filename() string {
	return t.filenameLabel.Text
}

func (t *Toolbar) onUpload() {
	if t.uploadHandler != nil {
		t.uploadHandler()
	}
}

func (t *Toolbar) onClear() {
	if t.clearHandler != nil {
		t.clearHandler()
	}
}

func (t *Toolbar) onForecast() {
	if t.forecastHandler != nil {
		t.forecastHandler()
	}
}

func (t *Toolbar) onExport() {
	if t.exportHandler != nil {
		t.exportHandler()
	}
}
