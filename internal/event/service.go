package event

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRng = errors.New("start_date must be before end_date")
)

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	ev, err := s.Repo.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return ev, nil
}

func (s *Service) ListEvents(ctx context.Context, f ListFilter) (*ListResponse, error) {
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = 100
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	events, total, err := s.Repo.ListEvents(ctx, f)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return &ListResponse{Total: total, Skip: f.Skip, Limit: f.Limit, Events: events}, nil
}

// SearchOpportunities never fails: a database error is logged and an
// empty result is returned so the agent can keep the conversation going.
func (s *Service) SearchOpportunities(ctx context.Context, f SearchFilter) []Opportunity {
	f.Location = strings.TrimSpace(f.Location)
	skills := make([]string, 0, len(f.Skills))
	for _, sk := range f.Skills {
		sk = strings.ToLower(strings.TrimSpace(sk))
		if sk != "" {
			skills = append(skills, sk)
		}
	}
	f.Skills = skills

	opps, err := s.Repo.SearchOpportunities(ctx, f)
	if err != nil {
		log.Printf("❌ Error searching events: %v", err)
		return []Opportunity{}
	}
	if opps == nil {
		return []Opportunity{}
	}
	return opps
}

// ParseDateRange validates the optional YYYY-MM-DD bounds used by the
// search API. End dates are pushed to end of day so a single-day range
// still matches events on that date.
func ParseDateRange(startStr, endStr string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startStr != "" {
		t, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
		start = &t
	}
	if endStr != "" {
		t, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
		eod := t.Add(24*time.Hour - time.Second)
		end = &eod
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, ErrInvalidDateRng
	}
	return start, end, nil
}

func (s *Service) ListUpcomingByParish(ctx context.Context, parishID uint, limit int) ([]Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	events, err := s.Repo.ListUpcomingByParish(ctx, parishID, limit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

func (s *Service) SearchByTitle(ctx context.Context, query string, limit int) ([]Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	events, err := s.Repo.SearchEventsByTitle(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

func (s *Service) ListSkills(ctx context.Context) ([]string, error) {
	skills, err := s.Repo.ListDistinctSkills(ctx)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []string{}
	}
	return skills, nil
}
