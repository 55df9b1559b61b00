package core

import (
	"context"
	"log/slog"
	"schooldekho/entity"
	"schooldekho/internal/lib/apperr"
)

// RegisterUser stores a new user unless the email is taken. The lookup gives
// the common case a clear answer; the unique index on email settles races.
func (c *Core) RegisterUser(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	user, err := entity.NewUser(in)
	if err != nil {
		return nil, err
	}
	if err = c.ready(); err != nil {
		return nil, err
	}

	existing, err := c.repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, apperr.Store("find user", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("email", "User already exists")
	}

	if err = c.repo.InsertUser(ctx, user); err != nil {
		return nil, apperr.Store("insert user", err)
	}

	c.log.With(
		slog.String("user_id", user.ID),
		slog.String("user_type", user.UserType),
	).Info("user registered")
	return user, nil
}

// SchoolAlumni lists alumni linked to schoolID.
func (c *Core) SchoolAlumni(ctx context.Context, schoolID string) ([]entity.User, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	users, err := c.repo.GetAlumni(ctx, schoolID)
	if err != nil {
		return nil, apperr.Store("find alumni", err)
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}
