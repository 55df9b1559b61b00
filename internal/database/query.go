package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"regexp"
	"schooldekho/entity"
)

// listingSort keeps offset pages stable: oldest first, id breaks ties.
var listingSort = bson.D{{"created_at", 1}, {"id", 1}}

// SchoolQuery translates the listing filters into a mongo predicate that is
// the conjunction of every supplied filter. Presence is decided by nil, so a
// zero fee bound still constrains the result.
func SchoolQuery(f entity.SchoolFilter) bson.D {
	filter := bson.D{}

	if v, ok := supplied(f.SchoolType); ok {
		filter = append(filter, bson.E{Key: "type", Value: v})
	}
	if v, ok := supplied(f.Board); ok {
		filter = append(filter, bson.E{Key: "board", Value: v})
	}
	if v, ok := supplied(f.City); ok {
		filter = append(filter, bson.E{Key: "location.city", Value: bson.D{
			{"$regex", regexp.QuoteMeta(v)},
			{"$options", "i"},
		}})
	}
	if f.MinFee != nil || f.MaxFee != nil {
		fee := bson.D{}
		if f.MinFee != nil {
			fee = append(fee, bson.E{Key: "$gte", Value: *f.MinFee})
		}
		if f.MaxFee != nil {
			fee = append(fee, bson.E{Key: "$lte", Value: *f.MaxFee})
		}
		filter = append(filter, bson.E{Key: "fees.annual_fee", Value: fee})
	}

	return filter
}

// an empty text filter carries no constraint
func supplied(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}
