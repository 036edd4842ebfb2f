package pipeline

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/benchorder/pkg/cache"
)

// Runner executes pipeline stages. It holds no run state, only the cache
// used for graph shapes and the logger.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// [cache.DefaultKeyer] and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
