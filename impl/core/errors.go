package core

import (
	"fmt"
	"schooldekho/internal/lib/apperr"
)

var errNoRepository = fmt.Errorf("repository not initialized")

func (c *Core) ready() error {
	if c.repo == nil {
		return apperr.Store("init", errNoRepository)
	}
	return nil
}
