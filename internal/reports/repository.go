package reports

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/CatholicOS/caritas-ai/internal/event"
	"github.com/CatholicOS/caritas-ai/internal/parish"
	"github.com/CatholicOS/caritas-ai/internal/registration"
)

// ============================
// 🔁 Repository Interface
type Repository interface {
	FindParishByName(ctx context.Context, name string) (*parish.Parish, error)
	ParishEventCounts(ctx context.Context, parishID uint) (total, upcoming, past, thisMonth int64, err error)
	ParishRegistrationCounts(ctx context.Context, parishID uint) (total, thisMonth, uniqueVols int64, err error)
	ParishSummaries(ctx context.Context) ([]ParishSummaryRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindParishByName returns the first active parish whose name matches
// case-insensitively, partial matches included.
func (r *repository) FindParishByName(ctx context.Context, name string) (*parish.Parish, error) {
	var p parish.Parish
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND name ILIKE ?", true, "%"+name+"%").
		Order("id ASC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func monthStart() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func (r *repository) ParishEventCounts(ctx context.Context, parishID uint) (total, upcoming, past, thisMonth int64, err error) {
	db := r.db.WithContext(ctx).Model(&event.Event{})
	now := time.Now()

	if err = db.Session(&gorm.Session{}).
		Where("parish_id = ? AND is_active = ?", parishID, true).
		Count(&total).Error; err != nil {
		return
	}
	if err = db.Session(&gorm.Session{}).
		Where("parish_id = ? AND is_active = ? AND event_date > ?", parishID, true, now).
		Count(&upcoming).Error; err != nil {
		return
	}
	if err = db.Session(&gorm.Session{}).
		Where("parish_id = ? AND is_active = ? AND event_date <= ?", parishID, true, now).
		Count(&past).Error; err != nil {
		return
	}
	start := monthStart()
	err = db.Session(&gorm.Session{}).
		Where("parish_id = ? AND is_active = ? AND event_date >= ? AND event_date < ?",
			parishID, true, start, start.AddDate(0, 1, 0)).
		Count(&thisMonth).Error
	return
}

func (r *repository) ParishRegistrationCounts(ctx context.Context, parishID uint) (total, thisMonth, uniqueVols int64, err error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&registration.Registration{}).
			Joins("JOIN events ON events.id = registrations.event_id").
			Where("events.parish_id = ? AND registrations.status <> ?", parishID, registration.StatusCancelled)
	}

	if err = base().Count(&total).Error; err != nil {
		return
	}
	if err = base().Where("registrations.created_at >= ?", monthStart()).Count(&thisMonth).Error; err != nil {
		return
	}
	err = base().Distinct("registrations.volunteer_id").Count(&uniqueVols).Error
	return
}

func (r *repository) ParishSummaries(ctx context.Context) ([]ParishSummaryRow, error) {
	var rows []ParishSummaryRow
	err := r.db.WithContext(ctx).Model(&parish.Parish{}).
		Select(`parishes.name AS parish_name, parishes.city, parishes.state,
			COUNT(DISTINCT events.id) AS total_events,
			COUNT(registrations.id) AS total_registrations`).
		Joins("LEFT JOIN events ON events.parish_id = parishes.id AND events.is_active = true").
		Joins("LEFT JOIN registrations ON registrations.event_id = events.id").
		Where("parishes.is_active = ?", true).
		Group("parishes.id, parishes.name, parishes.city, parishes.state").
		Order("parishes.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
