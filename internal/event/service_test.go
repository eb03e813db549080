package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEventRepo struct {
	opportunities []Opportunity
	events        []Event
	skills        []string
	err           error

	lastSearch SearchFilter
	lastList   ListFilter
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, id uint) (*Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.events {
		if f.events[i].ID == id {
			return &f.events[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventRepo) ListEvents(_ context.Context, filter ListFilter) ([]Event, int64, error) {
	f.lastList = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.events, int64(len(f.events)), nil
}

func (f *fakeEventRepo) SearchOpportunities(_ context.Context, filter SearchFilter) ([]Opportunity, error) {
	f.lastSearch = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.opportunities, nil
}

func (f *fakeEventRepo) ListUpcomingByParish(_ context.Context, _ uint, _ int) ([]Event, error) {
	return f.events, f.err
}

func (f *fakeEventRepo) SearchEventsByTitle(_ context.Context, _ string, _ int) ([]Event, error) {
	return f.events, f.err
}

func (f *fakeEventRepo) ListDistinctSkills(_ context.Context) ([]string, error) {
	return f.skills, f.err
}

func TestSearchOpportunities_NormalizesFilter(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)

	svc.SearchOpportunities(context.Background(), SearchFilter{
		Location: "  Baltimore ",
		Skills:   []string{" Cooking ", "TEACHING", "", "  "},
	})

	assert.Equal(t, "Baltimore", repo.lastSearch.Location)
	assert.Equal(t, []string{"cooking", "teaching"}, repo.lastSearch.Skills)
}

func TestSearchOpportunities_EmptyOnError(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("connection refused")}
	svc := NewService(repo)

	opps := svc.SearchOpportunities(context.Background(), SearchFilter{Location: "Baltimore"})
	assert.NotNil(t, opps)
	assert.Empty(t, opps)
}

func TestSearchOpportunities_NilResultBecomesEmpty(t *testing.T) {
	repo := &fakeEventRepo{opportunities: nil}
	svc := NewService(repo)

	opps := svc.SearchOpportunities(context.Background(), SearchFilter{Location: "Baltimore"})
	assert.NotNil(t, opps)
	assert.Empty(t, opps)
}

func TestGetEventByID_NotFound(t *testing.T) {
	svc := NewService(&fakeEventRepo{})

	_, err := svc.GetEventByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListEvents_ClampsPagination(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)

	resp, err := svc.ListEvents(context.Background(), ListFilter{Skip: -5, Limit: 9999})
	require.NoError(t, err)

	assert.Equal(t, 0, repo.lastList.Skip)
	assert.Equal(t, 100, repo.lastList.Limit)
	assert.NotNil(t, resp.Events)
}

func TestParseDateRange_Valid(t *testing.T) {
	start, end, err := ParseDateRange("2026-09-01", "2026-09-01")
	require.NoError(t, err)
	require.NotNil(t, start)
	require.NotNil(t, end)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *start)
	// The end bound covers the whole day.
	assert.Equal(t, time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC), *end)
}

func TestParseDateRange_OpenEnded(t *testing.T) {
	start, end, err := ParseDateRange("2026-09-01", "")
	require.NoError(t, err)
	assert.NotNil(t, start)
	assert.Nil(t, end)

	start, end, err = ParseDateRange("", "")
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestParseDateRange_InvalidFormat(t *testing.T) {
	_, _, err := ParseDateRange("09/01/2026", "")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, _, err = ParseDateRange("", "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDateRange_StartAfterEnd(t *testing.T) {
	_, _, err := ParseDateRange("2026-09-10", "2026-09-01")
	assert.ErrorIs(t, err, ErrInvalidDateRng)
}

func TestSpotsAvailable(t *testing.T) {
	maxVols := 10
	ev := Event{MaxVolunteers: &maxVols, RegisteredVolunteers: 7}
	spots := ev.SpotsAvailable()
	require.NotNil(t, spots)
	assert.Equal(t, 3, *spots)

	unlimited := Event{}
	assert.Nil(t, unlimited.SpotsAvailable())

	over := Event{MaxVolunteers: &maxVols, RegisteredVolunteers: 12}
	spots = over.SpotsAvailable()
	require.NotNil(t, spots)
	assert.Equal(t, 0, *spots)
}
