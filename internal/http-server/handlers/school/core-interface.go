package school

import (
	"context"
	"schooldekho/entity"
)

type Core interface {
	ListSchools(ctx context.Context, filter entity.SchoolFilter, page entity.PageRequest) (*entity.SchoolPage, error)
	GetSchool(ctx context.Context, id string) (*entity.School, error)
	CompareSchools(ctx context.Context, ids []string) ([]entity.School, error)
	FilterOptions(ctx context.Context) (*entity.FilterOptions, error)
}
