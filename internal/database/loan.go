package repository

import (
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"schooldekho/entity"
)

func (m *MongoDB) InsertLoanApplication(ctx context.Context, loan *entity.LoanApplication) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	if _, err := m.collection(loansCollection).InsertOne(ctx, loan); err != nil {
		return fmt.Errorf("mongodb insert loan application: %w", err)
	}
	return nil
}

// GetLoansByUser returns every application of userID, oldest first.
func (m *MongoDB) GetLoansByUser(ctx context.Context, userID string) ([]entity.LoanApplication, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{"created_at", 1}, {"id", 1}})
	cursor, err := m.collection(loansCollection).Find(ctx, bson.D{{"user_id", userID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find loan applications: %w", err)
	}
	defer cursor.Close(ctx)

	loans := make([]entity.LoanApplication, 0)
	if err = cursor.All(ctx, &loans); err != nil {
		return nil, fmt.Errorf("mongodb decode loan applications: %w", err)
	}
	return loans, nil
}
