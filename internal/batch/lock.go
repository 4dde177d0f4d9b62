package batch

import (
	"context"
	"fmt"
)

// acquire takes the workspace lock without blocking. The returned func
// releases it.
func (d *implDriver) acquire(ctx context.Context) (func(), error) {
	ok, err := d.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock file %s)", ErrLocked, d.lock.Path())
	}

	return func() {
		if err := d.lock.Unlock(); err != nil {
			d.logger.Warn(ctx, "Failed to release lock %s: %v", d.lock.Path(), err)
		}
	}, nil
}
