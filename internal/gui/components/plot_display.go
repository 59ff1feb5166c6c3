package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// PlotDisplay hosts at most one rendered chart.
type PlotDisplay struct {
	container *fyne.Container
	current   *canvas.Image
	minSize   fyne.Size
}

func NewPlotDisplay(width, height float32) *PlotDisplay {
	return &PlotDisplay{
		container: container.NewStack(),
		minSize:   fyne.NewSize(width, height),
	}
}

func (pd *PlotDisplay) GetContainer() *fyne.Container {
	return pd.container
}

// SetPlot discards the previous chart object and shows img in its place.
func (pd *PlotDisplay) SetPlot(img image.Image) {
	pd.Clear()
	if img == nil {
		return
	}

	plotImage := canvas.NewImageFromImage(img)
	plotImage.FillMode = canvas.ImageFillContain
	plotImage.SetMinSize(pd.minSize)

	pd.current = plotImage
	pd.container.Add(plotImage)
}

func (pd *PlotDisplay) Clear() {
	if pd.current == nil {
		return
	}
	pd.container.RemoveAll()
	pd.current = nil
}

func (pd *PlotDisplay) HasPlot() bool {
	return pd.current != nil
}

func (pd *PlotDisplay) ObjectCount() int {
	return len(pd.container.Objects)
}
