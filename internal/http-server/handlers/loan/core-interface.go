package loan

import (
	"context"
	"schooldekho/entity"
)

type Core interface {
	ApplyLoan(ctx context.Context, in entity.LoanInput) (*entity.LoanApplication, error)
	UserLoans(ctx context.Context, userID string) ([]entity.LoanApplication, error)
}
