package repository

import (
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"schooldekho/entity"
	"schooldekho/internal/lib/apperr"
)

// InsertUser stores user. A duplicate email rejected by the unique index is
// reported as a ConflictError.
func (m *MongoDB) InsertUser(ctx context.Context, user *entity.User) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	_, err := m.collection(usersCollection).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("email", "User already exists")
	}
	if err != nil {
		return fmt.Errorf("mongodb insert user: %w", err)
	}
	return nil
}

func (m *MongoDB) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var user entity.User
	err := m.collection(usersCollection).FindOne(ctx, bson.D{{"email", email}}).Decode(&user)
	if err != nil {
		return nil, m.findError(err)
	}
	return &user, nil
}

// GetAlumni returns alumni users carrying a school_id reference. Users are
// registered without that field, so the result is usually empty.
func (m *MongoDB) GetAlumni(ctx context.Context, schoolID string) ([]entity.User, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	filter := bson.D{{"user_type", entity.AlumniUser}, {"school_id", schoolID}}
	opts := options.Find().SetSort(bson.D{{"created_at", 1}})

	cursor, err := m.collection(usersCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find alumni: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]entity.User, 0)
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongodb decode alumni: %w", err)
	}
	return users, nil
}

func (m *MongoDB) InsertUsers(ctx context.Context, users []entity.User) error {
	if len(users) == 0 {
		return nil
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	docs := make([]interface{}, 0, len(users))
	for _, u := range users {
		docs = append(docs, u)
	}
	if _, err := m.collection(usersCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongodb insert users: %w", err)
	}
	return nil
}

func (m *MongoDB) ClearUsers(ctx context.Context) (int64, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.collection(usersCollection).DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("mongodb clear users: %w", err)
	}
	return res.DeletedCount, nil
}
