package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sales-forecaster/internal/models"
)

const PreviewColumnWidth = 120

// TablePreview renders a Dataset read-only. The table reads straight from
// the dataset, so setting a new one replaces every row at once.
type TablePreview struct {
	container *fyne.Container
	table     *widget.Table
	dataset   *models.Dataset
}

func NewTablePreview() *TablePreview {
	tp := &TablePreview{}

	tp.table = widget.NewTable(
		tp.size,
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(tp.CellText(id.Row, id.Col))
		},
	)
	tp.table.ShowHeaderRow = true
	tp.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	tp.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		label := o.(*widget.Label)
		if id.Row >= 0 {
			label.SetText("")
			return
		}
		label.SetText(tp.Header(id.Col))
	}

	tp.container = container.NewStack(tp.table)
	return tp
}

func (tp *TablePreview) GetContainer() *fyne.Container {
	return tp.container
}

func (tp *TablePreview) size() (int, int) {
	if tp.dataset == nil {
		return 0, 0
	}
	return tp.dataset.Len(), tp.dataset.Width()
}

// SetDataset replaces whatever was shown before.
func (tp *TablePreview) SetDataset(dataset *models.Dataset) {
	tp.dataset = dataset
	if dataset != nil {
		for col := 0; col < dataset.Width(); col++ {
			tp.table.SetColumnWidth(col, PreviewColumnWidth)
		}
	}
	tp.table.ScrollToTop()
	tp.table.Refresh()
}

func (tp *TablePreview) Clear() {
	tp.SetDataset(nil)
}

func (tp *TablePreview) RowCount() int {
	rows, _ := tp.size()
	return rows
}

func (tp *TablePreview) ColumnCount() int {
	_, cols := tp.size()
	return cols
}

func (tp *TablePreview) Header(col int) string {
	if tp.dataset == nil {
		return ""
	}
	cols := tp.dataset.Columns()
	if col < 0 || col >= len(cols) {
		return ""
	}
	return cols[col]
}

func (tp *TablePreview) CellText(row, col int) string {
	if tp.dataset == nil {
		return ""
	}
	return tp.dataset.Cell(row, col)
}
