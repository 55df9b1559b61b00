package core

import (
	"context"
	"log/slog"
	"schooldekho/entity"
	"schooldekho/internal/lib/apperr"
)

// ApplyLoan stores a new pending application. Referenced user and school are
// not looked up and identical applications are not merged.
func (c *Core) ApplyLoan(ctx context.Context, in entity.LoanInput) (*entity.LoanApplication, error) {
	loan, err := entity.NewLoanApplication(in)
	if err != nil {
		return nil, err
	}
	if err = c.ready(); err != nil {
		return nil, err
	}

	if err = c.repo.InsertLoanApplication(ctx, loan); err != nil {
		return nil, apperr.Store("insert loan application", err)
	}

	c.log.With(
		slog.String("application_id", loan.ID),
		slog.String("school_id", loan.SchoolID),
		slog.Int64("loan_amount", loan.LoanAmount),
	).Info("loan application submitted")
	return loan, nil
}

func (c *Core) UserLoans(ctx context.Context, userID string) ([]entity.LoanApplication, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	loans, err := c.repo.GetLoansByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Store("find loan applications", err)
	}
	if loans == nil {
		loans = []entity.LoanApplication{}
	}
	return loans, nil
}
