package parish

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"
)

var ErrParishNotFound = errors.New("parish not found")

// Service wraps parish lookup logic for the API and the agent tools.
type Service struct {
	Repo Repository
}

func NewService(r Repository) *Service {
	return &Service{Repo: r}
}

func (s *Service) GetParishByID(ctx context.Context, id uint) (*Parish, error) {
	p, err := s.Repo.GetParishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParishNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListParishes(ctx context.Context, filter ListFilter) (*ListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	filter.State = strings.ToUpper(filter.State)
	filter.Service = strings.ToLower(filter.Service)

	parishes, total, err := s.Repo.ListParishes(ctx, filter)
	if err != nil {
		return nil, err
	}
	if parishes == nil {
		parishes = []Parish{}
	}

	return &ListResponse{
		Total:    total,
		Skip:     filter.Skip,
		Limit:    filter.Limit,
		Parishes: parishes,
	}, nil
}

func (s *Service) SearchByName(ctx context.Context, name string, limit int) ([]Parish, error) {
	if limit <= 0 {
		limit = 10
	}
	parishes, err := s.Repo.SearchParishesByName(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	if parishes == nil {
		parishes = []Parish{}
	}
	return parishes, nil
}

// FindNearby locates active parishes for a city, requiring every listed
// service tag to be present. Errors are logged and swallowed: callers
// (including the agent tools) always get a list, possibly empty.
func (s *Service) FindNearby(ctx context.Context, city string, services []string, limit int) []Parish {
	if limit <= 0 {
		limit = 10
	}
	parishes, err := s.Repo.FindNearby(ctx, city, services, limit)
	if err != nil {
		log.Printf("❌ Error finding parishes: %v", err)
		return []Parish{}
	}
	if parishes == nil {
		return []Parish{}
	}
	return parishes
}

func (s *Service) ListStates(ctx context.Context) ([]string, error) {
	states, err := s.Repo.ListStates(ctx)
	if err != nil {
		return nil, err
	}
	if states == nil {
		states = []string{}
	}
	return states, nil
}
