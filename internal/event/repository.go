package event

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ============================
// 🔁 Repository Interface
type Repository interface {
	GetEventByID(ctx context.Context, id uint) (*Event, error)
	ListEvents(ctx context.Context, f ListFilter) ([]Event, int64, error)
	SearchOpportunities(ctx context.Context, f SearchFilter) ([]Opportunity, error)
	ListUpcomingByParish(ctx context.Context, parishID uint, limit int) ([]Event, error)
	SearchEventsByTitle(ctx context.Context, query string, limit int) ([]Event, error)
	ListDistinctSkills(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	var ev Event
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *repository) ListEvents(ctx context.Context, f ListFilter) ([]Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&Event{}).Where("is_active = ?", true)

	if f.ParishID != 0 {
		q = q.Where("parish_id = ?", f.ParishID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.FromDate != nil {
		q = q.Where("event_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("event_date <= ?", *f.ToDate)
	}
	if f.Skill != "" {
		q = q.Where("? = ANY(skills_needed)", f.Skill)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []Event
	if err := q.Order("event_date ASC").Offset(f.Skip).Limit(f.Limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// SearchOpportunities joins events with their parish and keeps only
// future, open events at active parishes. Skills filter is AND: an
// event must need every requested skill.
func (r *repository) SearchOpportunities(ctx context.Context, f SearchFilter) ([]Opportunity, error) {
	q := r.db.WithContext(ctx).Model(&Event{}).
		Select("events.*, parishes.name AS parish_name, parishes.city AS parish_city, parishes.state AS parish_state, parishes.address AS parish_address").
		Joins("JOIN parishes ON parishes.id = events.parish_id").
		Where("events.is_active = ?", true).
		Where("parishes.is_active = ?", true).
		Where("events.status = ?", StatusOpen).
		Where("events.event_date > ?", time.Now())

	if f.Location != "" {
		like := "%" + f.Location + "%"
		q = q.Where("parishes.city ILIKE ? OR parishes.state ILIKE ? OR parishes.zip_code = ?", like, like, f.Location)
	}
	for _, skill := range f.Skills {
		q = q.Where("? = ANY(events.skills_needed)", skill)
	}
	if f.StartDate != nil {
		q = q.Where("events.event_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("events.event_date <= ?", *f.EndDate)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	var opps []Opportunity
	if err := q.Order("events.event_date ASC").Limit(limit).Find(&opps).Error; err != nil {
		return nil, err
	}
	return opps, nil
}

func (r *repository) ListUpcomingByParish(ctx context.Context, parishID uint, limit int) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("parish_id = ? AND is_active = ? AND event_date > ?", parishID, true, time.Now()).
		Order("event_date ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) SearchEventsByTitle(ctx context.Context, query string, limit int) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND title ILIKE ?", true, "%"+query+"%").
		Order("event_date ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) ListDistinctSkills(ctx context.Context) ([]string, error) {
	var skills []string
	err := r.db.WithContext(ctx).Model(&Event{}).
		Select("DISTINCT unnest(skills_needed)").
		Where("is_active = ?", true).
		Order("1").
		Pluck("unnest", &skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}
