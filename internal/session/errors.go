package session

import (
	"errors"
	"fmt"
	"strings"

	"sales-forecaster/internal/models"
)

// ErrNoData is returned by operations that need a loaded dataset.
var ErrNoData = errors.New("no data loaded")

// RequiredColumns must be present, with exact case, before forecasting.
var RequiredColumns = []string{models.DateColumn, models.SalesColumn}

// LoadError reports an unreadable or unparseable input file.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ExportError reports a failure to write the output file.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ValidationError blocks forecasting. The session is left untouched.
type ValidationError struct {
	Missing []string
	Reason  string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Reason, e.Err)
		}
		return e.Reason
	}
	return RequiredColumnsMessage()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RequiredColumnsMessage is the text shown when Date or Sales is missing.
func RequiredColumnsMessage() string {
	quoted := make([]string, len(RequiredColumns))
	for i, col := range RequiredColumns {
		quoted[i] = "'" + col + "'"
	}
	return fmt.Sprintf("CSV must contain %s columns", strings.Join(quoted, " and "))
}
