package app

import (
	"sync"

	"sales-forecaster/internal/gui"
	"sales-forecaster/internal/logger"
	"sales-forecaster/internal/session"
)

type Lifecycle struct {
	session    *session.Session
	guiManager *gui.Manager
	logger     logger.Logger
	once       sync.Once
}

func NewLifecycle(s *session.Session, gm *gui.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		session:    s,
		guiManager: gm,
		logger:     log,
	}
}

// Shutdown may be reached from the window close intercept and from the
// signal listener; only the first call does anything.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", map[string]interface{}{
			"session_id": l.session.ID(),
			"state":      l.session.State().String(),
		})

		l.session.Clear()

		if l.guiManager != nil {
			l.guiManager.Shutdown()
			l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
		}

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}
