package alumni

import (
	"context"
	"schooldekho/entity"
)

type Core interface {
	SchoolAlumni(ctx context.Context, schoolID string) ([]entity.User, error)
}
