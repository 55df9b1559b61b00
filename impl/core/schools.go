package core

import (
	"context"
	"log/slog"
	"math"
	"schooldekho/entity"
	"schooldekho/internal/lib/apperr"
	"schooldekho/internal/lib/sl"
	"sort"
)

const minCompared = 2

// ListSchools returns one page of the schools matching filter together with
// the total match count and page count.
func (c *Core) ListSchools(ctx context.Context, filter entity.SchoolFilter, page entity.PageRequest) (*entity.SchoolPage, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := c.ready(); err != nil {
		return nil, err
	}

	var schools []entity.School
	// a page whose offset does not fit in int64 is past the end of any collection
	if page.Page-1 <= math.MaxInt64/page.Limit {
		var err error
		schools, err = c.repo.FindSchools(ctx, filter, page.Skip(), page.Limit)
		if err != nil {
			c.log.Error("find schools", sl.Err(err))
			return nil, apperr.Store("find schools", err)
		}
	}
	total, err := c.repo.CountSchools(ctx, filter)
	if err != nil {
		c.log.Error("count schools", sl.Err(err))
		return nil, apperr.Store("count schools", err)
	}
	if schools == nil {
		schools = []entity.School{}
	}

	return &entity.SchoolPage{
		Schools: schools,
		Total:   total,
		Page:    page.Page,
		Pages:   entity.PageCount(total, page.Limit),
	}, nil
}

func (c *Core) GetSchool(ctx context.Context, id string) (*entity.School, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	school, err := c.repo.GetSchoolByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("get school", err)
	}
	if school == nil {
		return nil, apperr.NotFound("School", id)
	}
	return school, nil
}

// CompareSchools resolves ids in request order, skipping unknown ids. A
// repeated id yields the school again. Fails unless at least two resolve.
func (c *Core) CompareSchools(ctx context.Context, ids []string) ([]entity.School, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var found []entity.School
	if len(ids) > 0 {
		var err error
		found, err = c.repo.GetSchoolsByIDs(ctx, ids)
		if err != nil {
			return nil, apperr.Store("compare schools", err)
		}
	}

	byID := make(map[string]entity.School, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	schools := make([]entity.School, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			schools = append(schools, s)
		}
	}

	if len(schools) < minCompared {
		c.log.With(
			slog.Int("requested", len(ids)),
			slog.Int("resolved", len(schools)),
		).Debug("not enough schools to compare")
		return nil, apperr.Validation("school_ids", "At least 2 schools required for comparison")
	}
	return schools, nil
}

// FilterOptions lists the distinct types, boards and cities, sorted.
func (c *Core) FilterOptions(ctx context.Context) (*entity.FilterOptions, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var opts entity.FilterOptions
	targets := []struct {
		field string
		dst   *[]string
	}{
		{"type", &opts.SchoolTypes},
		{"board", &opts.Boards},
		{"location.city", &opts.Cities},
	}
	for _, t := range targets {
		values, err := c.repo.DistinctSchoolValues(ctx, t.field)
		if err != nil {
			return nil, apperr.Store("distinct "+t.field, err)
		}
		if values == nil {
			values = []string{}
		}
		sort.Strings(values)
		*t.dst = values
	}
	return &opts, nil
}
