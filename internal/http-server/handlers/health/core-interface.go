package health

import "context"

type Core interface {
	Health(ctx context.Context) error
}
