package core

import (
	"context"
	"schooldekho/internal/lib/apperr"
)

// Health reports whether the document store answers.
func (c *Core) Health(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}
	return apperr.Store("ping", c.repo.Ping(ctx))
}
