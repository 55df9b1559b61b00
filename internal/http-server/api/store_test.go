package api

import (
	"context"
	"go.mongodb.org/mongo-driver/bson"
	"regexp"
	"schooldekho/entity"
	repository "schooldekho/internal/database"
	"schooldekho/internal/lib/apperr"
	"sort"
	"sync"
)

// memStore is an in-memory document store. Listing filters are evaluated by
// interpreting the predicate built by repository.SchoolQuery.
type memStore struct {
	mu      sync.Mutex
	schools []entity.School
	users   []entity.User
	loans   []entity.LoanApplication
	err     error
}

func (s *memStore) Ping(_ context.Context) error {
	return s.err
}

func schoolFields(sc entity.School) map[string]interface{} {
	return map[string]interface{}{
		"type":            sc.Type,
		"board":           sc.Board,
		"location.city":   sc.Location.City,
		"fees.annual_fee": sc.Fees.AnnualFee,
	}
}

func matches(doc map[string]interface{}, filter bson.D) bool {
	for _, e := range filter {
		value, ok := doc[e.Key]
		if !ok {
			return false
		}
		cond, isOp := e.Value.(bson.D)
		if !isOp {
			if value != e.Value {
				return false
			}
			continue
		}
		flags := ""
		for _, op := range cond {
			if op.Key == "$options" {
				flags = "(?" + op.Value.(string) + ")"
			}
		}
		for _, op := range cond {
			switch op.Key {
			case "$regex":
				if !regexp.MustCompile(flags + op.Value.(string)).MatchString(value.(string)) {
					return false
				}
			case "$gte":
				if value.(int64) < op.Value.(int64) {
					return false
				}
			case "$lte":
				if value.(int64) > op.Value.(int64) {
					return false
				}
			}
		}
	}
	return true
}

func (s *memStore) filtered(filter entity.SchoolFilter) []entity.School {
	query := repository.SchoolQuery(filter)
	out := make([]entity.School, 0)
	for _, sc := range s.schools {
		if matches(schoolFields(sc), query) {
			out = append(out, sc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *memStore) FindSchools(_ context.Context, filter entity.SchoolFilter, skip, limit int64) ([]entity.School, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	all := s.filtered(filter)
	n := int64(len(all))
	if skip >= n {
		return []entity.School{}, nil
	}
	return all[skip:min(skip+limit, n)], nil
}

func (s *memStore) CountSchools(_ context.Context, filter entity.SchoolFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.filtered(filter))), nil
}

func (s *memStore) GetSchoolByID(_ context.Context, id string) (*entity.School, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, sc := range s.schools {
		if sc.ID == id {
			return &sc, nil
		}
	}
	return nil, nil
}

func (s *memStore) GetSchoolsByIDs(_ context.Context, ids []string) ([]entity.School, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []entity.School
	for _, sc := range s.schools {
		if want[sc.ID] {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *memStore) DistinctSchoolValues(_ context.Context, field string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	seen := map[string]bool{}
	var out []string
	for _, sc := range s.schools {
		v := schoolFields(sc)[field].(string)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *memStore) InsertUser(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperr.Conflict("email", "User already exists")
		}
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *memStore) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memStore) GetAlumni(_ context.Context, _ string) ([]entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	// users never carry a school reference
	return []entity.User{}, nil
}

func (s *memStore) InsertLoanApplication(_ context.Context, loan *entity.LoanApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.loans = append(s.loans, *loan)
	return nil
}

func (s *memStore) GetLoansByUser(_ context.Context, userID string) ([]entity.LoanApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]entity.LoanApplication, 0)
	for _, l := range s.loans {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}
