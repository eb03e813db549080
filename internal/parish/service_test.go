package parish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeParishRepo struct {
	parishes []Parish
	states   []string
	err      error

	lastFilter   ListFilter
	lastCity     string
	lastServices []string
	lastLimit    int
}

func (f *fakeParishRepo) GetParishByID(_ context.Context, id uint) (*Parish, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.parishes {
		if f.parishes[i].ID == id {
			return &f.parishes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeParishRepo) ListParishes(_ context.Context, filter ListFilter) ([]Parish, int64, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.parishes, int64(len(f.parishes)), nil
}

func (f *fakeParishRepo) SearchParishesByName(_ context.Context, _ string, _ int) ([]Parish, error) {
	return f.parishes, f.err
}

func (f *fakeParishRepo) FindNearby(_ context.Context, city string, services []string, limit int) ([]Parish, error) {
	f.lastCity = city
	f.lastServices = services
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.parishes, nil
}

func (f *fakeParishRepo) ListStates(_ context.Context) ([]string, error) {
	return f.states, f.err
}

func TestGetParishByID_NotFound(t *testing.T) {
	svc := NewService(&fakeParishRepo{})

	_, err := svc.GetParishByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrParishNotFound)
}

func TestListParishes_NormalizesFilter(t *testing.T) {
	repo := &fakeParishRepo{}
	svc := NewService(repo)

	resp, err := svc.ListParishes(context.Background(), ListFilter{
		State:   "md",
		Service: "Food Pantry",
	})
	require.NoError(t, err)

	assert.Equal(t, "MD", repo.lastFilter.State)
	assert.Equal(t, "food pantry", repo.lastFilter.Service)
	assert.Equal(t, 100, repo.lastFilter.Limit)
	assert.NotNil(t, resp.Parishes)
}

func TestFindNearby_SwallowsErrors(t *testing.T) {
	repo := &fakeParishRepo{err: errors.New("connection refused")}
	svc := NewService(repo)

	parishes := svc.FindNearby(context.Background(), "Baltimore", []string{"food pantry"}, 5)
	assert.NotNil(t, parishes)
	assert.Empty(t, parishes)
}

func TestFindNearby_DefaultLimit(t *testing.T) {
	repo := &fakeParishRepo{}
	svc := NewService(repo)

	svc.FindNearby(context.Background(), "Baltimore", nil, 0)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestFindNearby_PassesServices(t *testing.T) {
	repo := &fakeParishRepo{parishes: []Parish{{ID: 1, Name: "St. Mary's Church"}}}
	svc := NewService(repo)

	parishes := svc.FindNearby(context.Background(), "Baltimore", []string{"food pantry", "soup kitchen"}, 3)
	require.Len(t, parishes, 1)
	assert.Equal(t, "Baltimore", repo.lastCity)
	assert.Equal(t, []string{"food pantry", "soup kitchen"}, repo.lastServices)
}
