package logger

// Logger provides component-scoped structured logging
type Logger interface {
	Debug(component string, message string, fields map[string]interface{})
	Info(component string, message string, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// NoOpLogger discards everything. Used by tests and when logging is disabled.
type NoOpLogger struct{}

func (NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
func (NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
