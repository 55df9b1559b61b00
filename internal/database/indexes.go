package repository

import (
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"log/slog"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func indexPlan() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: schoolsCollection,
			models: []mongo.IndexModel{
				{Keys: bson.D{{"id", 1}}, Options: options.Index().SetName("id_unique").SetUnique(true)},
				{Keys: bson.D{{"created_at", 1}, {"id", 1}}, Options: options.Index().SetName("listing_order")},
			},
		},
		{
			collection: usersCollection,
			models: []mongo.IndexModel{
				{Keys: bson.D{{"id", 1}}, Options: options.Index().SetName("id_unique").SetUnique(true)},
				// the authoritative duplicate-registration check
				{Keys: bson.D{{"email", 1}}, Options: options.Index().SetName("email_unique").SetUnique(true)},
			},
		},
		{
			collection: loansCollection,
			models: []mongo.IndexModel{
				{Keys: bson.D{{"id", 1}}, Options: options.Index().SetName("id_unique").SetUnique(true)},
				{Keys: bson.D{{"user_id", 1}}, Options: options.Index().SetName("user_id_index")},
			},
		},
	}
}

// EnsureIndexes creates the indexes every collection relies on. Creating an
// existing index is a no-op in mongo.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	for _, plan := range indexPlan() {
		names, err := m.collection(plan.collection).Indexes().CreateMany(ctx, plan.models)
		if err != nil {
			return fmt.Errorf("mongodb create indexes on %s: %w", plan.collection, err)
		}
		m.log.With(
			slog.String("collection", plan.collection),
			slog.Any("indexes", names),
		).Debug("indexes ensured")
	}
	return nil
}
