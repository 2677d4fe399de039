package phishing

import (
	"sync"

	"go.uber.org/zap"
)

// Loader loads the estimator at most once. Concurrent callers block until the
// first load finishes and then all see the same estimator or error.
type Loader struct {
	path   string
	logger *zap.Logger

	once sync.Once
	est  *Estimator
	err  error
}

func NewLoader(path string, logger *zap.Logger) *Loader {
	if path == "" {
		path = DefaultModelPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{path: path, logger: logger.With(zap.String("component", "phishing_loader"))}
}

// Get returns the loaded estimator, loading it on first use.
func (l *Loader) Get() (*Estimator, error) {
	l.once.Do(func() {
		l.est, l.err = Load(l.path)
		if l.err != nil {
			l.logger.Warn("phishing model not loaded, scoring will be rule-based",
				zap.String("path", l.path), zap.Error(l.err))
			return
		}
		l.logger.Info("phishing model loaded",
			zap.String("path", l.path),
			zap.String("version", l.est.Version()),
			zap.Int("trees", len(l.est.forest.Trees)))
	})
	return l.est, l.err
}

// Available reports whether the estimator loaded successfully.
func (l *Loader) Available() bool {
	est, err := l.Get()
	return err == nil && est != nil
}

func (l *Loader) Path() string {
	return l.path
}
