package core

import (
	"context"
	"log/slog"
	"schooldekho/entity"
	"schooldekho/internal/lib/sl"
)

type Repository interface {
	Ping(ctx context.Context) error

	FindSchools(ctx context.Context, filter entity.SchoolFilter, skip, limit int64) ([]entity.School, error)
	CountSchools(ctx context.Context, filter entity.SchoolFilter) (int64, error)
	GetSchoolByID(ctx context.Context, id string) (*entity.School, error)
	GetSchoolsByIDs(ctx context.Context, ids []string) ([]entity.School, error)
	DistinctSchoolValues(ctx context.Context, field string) ([]string, error)

	InsertUser(ctx context.Context, user *entity.User) error
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAlumni(ctx context.Context, schoolID string) ([]entity.User, error)

	InsertLoanApplication(ctx context.Context, loan *entity.LoanApplication) error
	GetLoansByUser(ctx context.Context, userID string) ([]entity.LoanApplication, error)
}

type Core struct {
	repo Repository
	log  *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}
