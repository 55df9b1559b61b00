package repository

import (
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"schooldekho/entity"
)

// FindSchools returns one window of the schools matching filter.
func (m *MongoDB) FindSchools(ctx context.Context, filter entity.SchoolFilter, skip, limit int64) ([]entity.School, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(listingSort).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := m.collection(schoolsCollection).Find(ctx, SchoolQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find schools: %w", err)
	}
	defer cursor.Close(ctx)

	schools := make([]entity.School, 0, limit)
	if err = cursor.All(ctx, &schools); err != nil {
		return nil, fmt.Errorf("mongodb decode schools: %w", err)
	}
	return schools, nil
}

// CountSchools counts every school matching filter, not just one page.
func (m *MongoDB) CountSchools(ctx context.Context, filter entity.SchoolFilter) (int64, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	count, err := m.collection(schoolsCollection).CountDocuments(ctx, SchoolQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("mongodb count schools: %w", err)
	}
	return count, nil
}

// GetSchoolByID returns nil when no school has the id.
func (m *MongoDB) GetSchoolByID(ctx context.Context, id string) (*entity.School, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var school entity.School
	err := m.collection(schoolsCollection).FindOne(ctx, bson.D{{"id", id}}).Decode(&school)
	if err != nil {
		return nil, m.findError(err)
	}
	return &school, nil
}

// GetSchoolsByIDs returns the schools whose id is in ids, in no particular order.
func (m *MongoDB) GetSchoolsByIDs(ctx context.Context, ids []string) ([]entity.School, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	filter := bson.D{{"id", bson.D{{"$in", ids}}}}
	cursor, err := m.collection(schoolsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb find schools: %w", err)
	}
	defer cursor.Close(ctx)

	schools := make([]entity.School, 0, len(ids))
	if err = cursor.All(ctx, &schools); err != nil {
		return nil, fmt.Errorf("mongodb decode schools: %w", err)
	}
	return schools, nil
}

// DistinctSchoolValues lists the distinct string values stored under field.
func (m *MongoDB) DistinctSchoolValues(ctx context.Context, field string) ([]string, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	raw, err := m.collection(schoolsCollection).Distinct(ctx, field, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongodb distinct %s: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values, nil
}

func (m *MongoDB) InsertSchools(ctx context.Context, schools []entity.School) error {
	if len(schools) == 0 {
		return nil
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	docs := make([]interface{}, 0, len(schools))
	for _, s := range schools {
		docs = append(docs, s)
	}
	if _, err := m.collection(schoolsCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongodb insert schools: %w", err)
	}
	return nil
}

// ClearSchools removes every school. Only the seed command calls it.
func (m *MongoDB) ClearSchools(ctx context.Context) (int64, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.collection(schoolsCollection).DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("mongodb clear schools: %w", err)
	}
	return res.DeletedCount, nil
}
