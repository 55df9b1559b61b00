package core

import (
	"context"
	"schooldekho/entity"
	"sync"
)

// fakeRepo keeps documents in memory. Schools are returned in insertion
// order and the filter is recorded rather than applied.
type fakeRepo struct {
	mu sync.Mutex

	schools []entity.School
	users   []entity.User
	loans   []entity.LoanApplication

	lastFilter entity.SchoolFilter
	distinct   map[string][]string
	err        error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{distinct: map[string][]string{}}
}

func (f *fakeRepo) Ping(_ context.Context) error {
	return f.err
}

func (f *fakeRepo) FindSchools(_ context.Context, filter entity.SchoolFilter, skip, limit int64) ([]entity.School, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	n := int64(len(f.schools))
	if skip >= n {
		return nil, nil
	}
	end := min(skip+limit, n)
	return append([]entity.School(nil), f.schools[skip:end]...), nil
}

func (f *fakeRepo) CountSchools(_ context.Context, _ entity.SchoolFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.schools)), nil
}

func (f *fakeRepo) GetSchoolByID(_ context.Context, id string) (*entity.School, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.schools {
		if f.schools[i].ID == id {
			s := f.schools[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetSchoolsByIDs(_ context.Context, ids []string) ([]entity.School, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []entity.School
	// reverse order: callers must not rely on store order
	for i := len(f.schools) - 1; i >= 0; i-- {
		if want[f.schools[i].ID] {
			out = append(out, f.schools[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) DistinctSchoolValues(_ context.Context, field string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.distinct[field], nil
}

func (f *fakeRepo) InsertUser(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetAlumni(_ context.Context, _ string) ([]entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func (f *fakeRepo) InsertLoanApplication(_ context.Context, loan *entity.LoanApplication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.loans = append(f.loans, *loan)
	return nil
}

func (f *fakeRepo) GetLoansByUser(_ context.Context, userID string) ([]entity.LoanApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.LoanApplication
	for _, l := range f.loans {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}
