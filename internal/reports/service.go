package reports

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrParishNotFound = errors.New("parish not found")
	ErrNameRequired   = errors.New("parish name is required")
)

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

// ParishAnalytics builds the impact summary for the first parish whose
// name matches the query.
func (s *Service) ParishAnalytics(ctx context.Context, name string) (*ParishAnalytics, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	p, err := s.Repo.FindParishByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParishNotFound
		}
		return nil, err
	}

	totalEvents, upcoming, past, eventsMonth, err := s.Repo.ParishEventCounts(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	totalRegs, regsMonth, uniqueVols, err := s.Repo.ParishRegistrationCounts(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return &ParishAnalytics{
		ParishID:            p.ID,
		ParishName:          p.Name,
		City:                p.City,
		State:               p.State,
		ServicesOffered:     p.Services,
		TotalEvents:         totalEvents,
		UpcomingEvents:      upcoming,
		PastEvents:          past,
		EventsThisMonth:     eventsMonth,
		TotalRegistrations:  totalRegs,
		VolunteersThisMonth: regsMonth,
		UniqueVolunteers:    uniqueVols,
	}, nil
}

func (s *Service) ParishSummaries(ctx context.Context) ([]ParishSummaryRow, error) {
	rows, err := s.Repo.ParishSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ParishSummaryRow{}
	}
	return rows, nil
}
