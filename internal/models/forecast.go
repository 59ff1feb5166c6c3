package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DateColumn  = "Date"
	SalesColumn = "Sales"

	// ForecastOffset is added to the last actual value to produce the mock forecast point.
	ForecastOffset = 10.0
)

// Observation is an optional numeric value.
type Observation struct {
	Value   float64
	Present bool
}

func Present(v float64) Observation {
	return Observation{Value: v, Present: true}
}

// ForecastResult pairs the actual Sales series with the mock forecast series.
// Both have the same length; Forecast is absent everywhere but the last index.
type ForecastResult struct {
	Actual   []Observation
	Forecast []Observation
}

func (f *ForecastResult) Len() int {
	return len(f.Actual)
}

// missingMarkers are the cell texts read as a missing value, matching the
// default NA set of common dataframe readers.
var missingMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// IsMissing reports whether a cell holds no value.
func IsMissing(raw string) bool {
	text := strings.TrimSpace(raw)
	if text == "" {
		return true
	}
	_, ok := missingMarkers[text]
	return ok
}

// ParseSeries converts cell text to observations. Blank cells, NA markers
// and NaN are absent; any other non-numeric text is an error.
func ParseSeries(values []string) ([]Observation, error) {
	series := make([]Observation, len(values))
	for i, raw := range values {
		if IsMissing(raw) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %q is not numeric", i, raw)
		}
		if math.IsNaN(v) {
			continue
		}
		series[i] = Present(v)
	}
	return series, nil
}

// Finite reports whether the observation holds a drawable number.
func (o Observation) Finite() bool {
	return o.Present && !math.IsNaN(o.Value) && !math.IsInf(o.Value, 0)
}

// BuildForecast appends the mock projection to an actual series.
func BuildForecast(actual []Observation) *ForecastResult {
	forecast := make([]Observation, len(actual))
	if n := len(actual); n > 0 && actual[n-1].Finite() {
		forecast[n-1] = Present(actual[n-1].Value + ForecastOffset)
	}

	a := make([]Observation, len(actual))
	copy(a, actual)

	return &ForecastResult{Actual: a, Forecast: forecast}
}
