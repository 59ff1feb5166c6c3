package models

// SessionState is derived from which parts of the session are populated.
type SessionState int

const (
	StateNoData SessionState = iota
	StateLoaded
	StateForecasted
)

func (s SessionState) String() string {
	switch s {
	case StateNoData:
		return "no_data"
	case StateLoaded:
		return "loaded"
	case StateForecasted:
		return "forecasted"
	default:
		return "unknown"
	}
}
