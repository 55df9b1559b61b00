// Package seed replaces the schools and users collections with a small demo
// directory.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"schooldekho/entity"
	"schooldekho/internal/lib/sl"
	"time"
)

type Store interface {
	ClearSchools(ctx context.Context) (int64, error)
	ClearUsers(ctx context.Context) (int64, error)
	InsertSchools(ctx context.Context, schools []entity.School) error
	InsertUsers(ctx context.Context, users []entity.User) error
}

// Build turns the demo inputs into records. Creation times are spaced one
// millisecond apart so the listing keeps the literal order.
func Build() ([]entity.School, []entity.User, error) {
	inputs := Schools()
	schools := make([]entity.School, 0, len(inputs))
	for i, in := range inputs {
		school, err := entity.NewSchool(in)
		if err != nil {
			return nil, nil, fmt.Errorf("school %q: %w", in.Name, err)
		}
		school.CreatedAt = school.CreatedAt.Add(time.Duration(i) * time.Millisecond)
		schools = append(schools, *school)
	}

	userInputs := Users()
	users := make([]entity.User, 0, len(userInputs))
	for _, in := range userInputs {
		user, err := entity.NewUser(in)
		if err != nil {
			return nil, nil, fmt.Errorf("user %q: %w", in.Email, err)
		}
		users = append(users, *user)
	}
	return schools, users, nil
}

// Run clears both collections and inserts the demo records.
func Run(ctx context.Context, store Store, log *slog.Logger) error {
	log = log.With(sl.Module("seed"))

	schools, users, err := Build()
	if err != nil {
		return err
	}

	removed, err := store.ClearSchools(ctx)
	if err != nil {
		return fmt.Errorf("clear schools: %w", err)
	}
	log.Debug("schools cleared", slog.Int64("count", removed))
	if removed, err = store.ClearUsers(ctx); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	log.Debug("users cleared", slog.Int64("count", removed))

	if err = store.InsertSchools(ctx, schools); err != nil {
		return fmt.Errorf("insert schools: %w", err)
	}
	log.Info("schools inserted", slog.Int("count", len(schools)))

	if err = store.InsertUsers(ctx, users); err != nil {
		return fmt.Errorf("insert users: %w", err)
	}
	log.Info("users inserted", slog.Int("count", len(users)))
	return nil
}
