package plot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"sales-forecaster/internal/models"
)

const (
	DefaultWidth  = 700
	DefaultHeight = 400

	Title        = "Sales Forecast (Sample)"
	ActualName   = "Actual Sales"
	ForecastName = "Forecast"

	maxTicks = 10
)

var ErrNothingToPlot = errors.New("no values to plot")

type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{width: width, height: height}
}

func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Render draws the actual series as a solid line and the forecast as a dashed
// line with markers, both over the row index, and returns the raster image.
func (r *Renderer) Render(result *models.ForecastResult) (image.Image, error) {
	if result == nil || result.Len() == 0 {
		return nil, ErrNothingToPlot
	}

	actualXs, actualYs := presentPoints(result.Actual)
	forecastXs, forecastYs := presentPoints(result.Forecast)
	if len(actualXs) == 0 && len(forecastXs) == 0 {
		return nil, ErrNothingToPlot
	}

	series := []chart.Series{}
	if len(actualXs) > 0 {
		xs, ys := padSingle(actualXs, actualYs)
		series = append(series, chart.ContinuousSeries{
			Name:    ActualName,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				StrokeWidth: 2,
			},
		})
	}
	if len(forecastXs) > 0 {
		xs, ys := padSingle(forecastXs, forecastYs)
		series = append(series, chart.ContinuousSeries{
			Name:    ForecastName,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor:     chart.ColorOrange,
				StrokeWidth:     2,
				StrokeDashArray: []float64{5.0, 5.0},
				DotColor:        chart.ColorOrange,
				DotWidth:        4,
			},
		})
	}

	ch := chart.Chart{
		Title:      Title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      indexAxis(result.Len()),
		YAxis: chart.YAxis{
			Name:  models.SalesColumn,
			Range: valueRange(actualYs, forecastYs),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}

	return img, nil
}

func presentPoints(series []models.Observation) ([]float64, []float64) {
	xs := make([]float64, 0, len(series))
	ys := make([]float64, 0, len(series))
	for i, obs := range series {
		if !obs.Finite() {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, obs.Value)
	}
	return xs, ys
}

// go-chart needs at least two values per series to draw.
func padSingle(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0]}, []float64{ys[0], ys[0]}
}

func indexAxis(n int) chart.XAxis {
	last := n - 1
	if last < 1 {
		last = 1
	}

	step := (last + maxTicks - 1) / maxTicks
	if step < 1 {
		step = 1
	}
	ticks := []chart.Tick{}
	for i := 0; i <= last; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: strconv.Itoa(i)})
	}

	return chart.XAxis{
		Name:  "Index",
		Range: &chart.ContinuousRange{Min: 0, Max: float64(last)},
		Ticks: ticks,
	}
}

func valueRange(groups ...[]float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, values := range groups {
		for _, v := range values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 1)
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}
