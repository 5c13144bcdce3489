// Package closer collects shutdown hooks during startup and runs them in
// reverse order when the application stops.
package closer

import (
	"context"
	"errors"
	"sync"

	"github.com/bryanrg22/CalTech-Hacks/internal/logger"
)

type namedCloser struct {
	name string
	fn   func(ctx context.Context) error
}

var (
	mu      sync.Mutex
	closers []namedCloser
	log     = logger.L()
)

func SetLogger(l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// AddNamed registers a shutdown hook. Hooks run LIFO in CloseAll.
func AddNamed(name string, fn func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

// CloseAll runs every registered hook in reverse registration order. All
// hooks run even if some fail; their errors are joined.
func CloseAll(ctx context.Context) error {
	mu.Lock()
	toClose := closers
	closers = nil
	mu.Unlock()

	var errs []error
	for i := len(toClose) - 1; i >= 0; i-- {
		c := toClose[i]
		if err := c.fn(ctx); err != nil {
			log.Error(ctx, "failed to close "+c.name, logger.ErrorF(err))
			errs = append(errs, err)
			continue
		}
		log.Info(ctx, "closed "+c.name)
	}

	return errors.Join(errs...)
}
