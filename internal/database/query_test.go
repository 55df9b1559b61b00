package repository

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"regexp"
	"schooldekho/entity"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func field(t *testing.T, filter bson.D, key string) (interface{}, bool) {
	t.Helper()
	for _, e := range filter {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func TestSchoolQueryEmpty(t *testing.T) {
	assert.Empty(t, SchoolQuery(entity.SchoolFilter{}))
}

func TestSchoolQueryIgnoresEmptyStrings(t *testing.T) {
	filter := SchoolQuery(entity.SchoolFilter{SchoolType: strPtr(""), Board: strPtr(""), City: strPtr("")})
	assert.Empty(t, filter)
}

func TestSchoolQueryEquality(t *testing.T) {
	filter := SchoolQuery(entity.SchoolFilter{
		SchoolType: strPtr("Boarding School"),
		Board:      strPtr("CBSE"),
	})

	assert.Equal(t, bson.D{
		{Key: "type", Value: "Boarding School"},
		{Key: "board", Value: "CBSE"},
	}, filter)
}

func TestSchoolQueryCityIsCaseInsensitiveSubstring(t *testing.T) {
	filter := SchoolQuery(entity.SchoolFilter{City: strPtr("delhi")})

	value, ok := field(t, filter, "location.city")
	require.True(t, ok)
	cond := value.(bson.D)
	assert.Equal(t, "$regex", cond[0].Key)
	assert.Equal(t, bson.E{Key: "$options", Value: "i"}, cond[1])

	re := regexp.MustCompile("(?i)" + cond[0].Value.(string))
	assert.True(t, re.MatchString("New Delhi"))
	assert.True(t, re.MatchString("Delhi"))
	assert.False(t, re.MatchString("Mumbai"))
}

func TestSchoolQueryCityIsLiteral(t *testing.T) {
	filter := SchoolQuery(entity.SchoolFilter{City: strPtr("St. Louis (MO)")})

	value, _ := field(t, filter, "location.city")
	re := regexp.MustCompile("(?i)" + value.(bson.D)[0].Value.(string))
	assert.True(t, re.MatchString("st. louis (mo)"))
	assert.False(t, re.MatchString("StX Louis MO"))
}

func TestSchoolQueryFeeRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int64
		want     bson.D
	}{
		{"both", intPtr(50000), intPtr(150000), bson.D{{Key: "$gte", Value: int64(50000)}, {Key: "$lte", Value: int64(150000)}}},
		{"min only", intPtr(110000), nil, bson.D{{Key: "$gte", Value: int64(110000)}}},
		{"max only", nil, intPtr(90000), bson.D{{Key: "$lte", Value: int64(90000)}}},
		{"zero min is kept", intPtr(0), nil, bson.D{{Key: "$gte", Value: int64(0)}}},
		{"zero max is kept", nil, intPtr(0), bson.D{{Key: "$lte", Value: int64(0)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := SchoolQuery(entity.SchoolFilter{MinFee: tt.min, MaxFee: tt.max})

			value, ok := field(t, filter, "fees.annual_fee")
			require.True(t, ok)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestSchoolQueryCombinesAll(t *testing.T) {
	filter := SchoolQuery(entity.SchoolFilter{
		SchoolType: strPtr("Day School"),
		Board:      strPtr("ICSE"),
		City:       strPtr("mum"),
		MinFee:     intPtr(1),
		MaxFee:     intPtr(2),
	})

	keys := make([]string, 0, len(filter))
	for _, e := range filter {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"type", "board", "location.city", "fees.annual_fee"}, keys)
}

func TestIndexPlanDeclaresUniqueEmail(t *testing.T) {
	for _, plan := range indexPlan() {
		if plan.collection != usersCollection {
			continue
		}
		for _, model := range plan.models {
			if model.Options != nil && model.Options.Name != nil && *model.Options.Name == "email_unique" {
				require.NotNil(t, model.Options.Unique)
				assert.True(t, *model.Options.Unique)
				return
			}
		}
	}
	t.Fatal("email_unique index not declared")
}
