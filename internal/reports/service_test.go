package reports

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/CatholicOS/caritas-ai/internal/parish"
)

type fakeReportsRepo struct {
	parish    *parish.Parish
	summaries []ParishSummaryRow

	totalEvents, upcoming, past, eventsMonth int64
	totalRegs, regsMonth, uniqueVols         int64
}

func (f *fakeReportsRepo) FindParishByName(_ context.Context, _ string) (*parish.Parish, error) {
	if f.parish == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.parish, nil
}

func (f *fakeReportsRepo) ParishEventCounts(_ context.Context, _ uint) (int64, int64, int64, int64, error) {
	return f.totalEvents, f.upcoming, f.past, f.eventsMonth, nil
}

func (f *fakeReportsRepo) ParishRegistrationCounts(_ context.Context, _ uint) (int64, int64, int64, error) {
	return f.totalRegs, f.regsMonth, f.uniqueVols, nil
}

func (f *fakeReportsRepo) ParishSummaries(_ context.Context) ([]ParishSummaryRow, error) {
	return f.summaries, nil
}

func TestParishAnalytics(t *testing.T) {
	repo := &fakeReportsRepo{
		parish: &parish.Parish{
			ID: 1, Name: "St. Mary's Church", City: "Baltimore", State: "MD",
			Services: pq.StringArray{"food pantry", "youth ministry"},
		},
		totalEvents: 12, upcoming: 3, past: 9, eventsMonth: 2,
		totalRegs: 85, regsMonth: 14, uniqueVols: 40,
	}
	svc := NewService(repo)

	a, err := svc.ParishAnalytics(context.Background(), "st. mary")
	require.NoError(t, err)

	assert.Equal(t, "St. Mary's Church", a.ParishName)
	assert.Equal(t, int64(12), a.TotalEvents)
	assert.Equal(t, int64(3), a.UpcomingEvents)
	assert.Equal(t, int64(9), a.PastEvents)
	assert.Equal(t, int64(85), a.TotalRegistrations)
	assert.Equal(t, int64(40), a.UniqueVolunteers)
	assert.Equal(t, []string{"food pantry", "youth ministry"}, a.ServicesOffered)
}

func TestParishAnalytics_NotFound(t *testing.T) {
	svc := NewService(&fakeReportsRepo{})

	_, err := svc.ParishAnalytics(context.Background(), "Unknown Parish")
	assert.ErrorIs(t, err, ErrParishNotFound)
}

func TestParishAnalytics_NameRequired(t *testing.T) {
	svc := NewService(&fakeReportsRepo{})

	_, err := svc.ParishAnalytics(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestParishSummaries_NilBecomesEmpty(t *testing.T) {
	svc := NewService(&fakeReportsRepo{})

	rows, err := svc.ParishSummaries(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
