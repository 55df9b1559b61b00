package user

import (
	"context"
	"schooldekho/entity"
)

type Core interface {
	RegisterUser(ctx context.Context, in entity.UserInput) (*entity.User, error)
}
