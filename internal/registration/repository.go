package registration

import (
	"context"

	"gorm.io/gorm"

	"github.com/CatholicOS/caritas-ai/internal/event"
	"github.com/CatholicOS/caritas-ai/internal/parish"
	"github.com/CatholicOS/caritas-ai/internal/volunteer"
)

// ============================
// 🔁 Repository Interface
// WithTx runs fn against a repository bound to a single transaction so
// the whole registration flow commits or rolls back together.
type Repository interface {
	WithTx(ctx context.Context, fn func(txRepo Repository) error) error

	GetEvent(ctx context.Context, id uint) (*event.Event, error)
	GetParish(ctx context.Context, id uint) (*parish.Parish, error)
	FindVolunteerByEmail(ctx context.Context, email string) (*volunteer.Volunteer, error)
	CreateVolunteer(ctx context.Context, v *volunteer.Volunteer) error

	Exists(ctx context.Context, volunteerID, eventID uint) (bool, error)
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id uint) (*Registration, error)
	Update(ctx context.Context, reg *Registration) error
	ListByEvent(ctx context.Context, eventID uint) ([]Registration, error)
	ListByVolunteer(ctx context.Context, volunteerID uint) ([]Registration, error)

	IncrementRegistered(ctx context.Context, eventID uint) (bool, error)
	MarkFullIfAtCapacity(ctx context.Context, eventID uint) error
	MarkConfirmationSent(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(ctx context.Context, fn func(txRepo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) GetEvent(ctx context.Context, id uint) (*event.Event, error) {
	var ev event.Event
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *repository) GetParish(ctx context.Context, id uint) (*parish.Parish, error) {
	var p parish.Parish
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindVolunteerByEmail(ctx context.Context, email string) (*volunteer.Volunteer, error) {
	var v volunteer.Volunteer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) CreateVolunteer(ctx context.Context, v *volunteer.Volunteer) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// Exists counts every status, cancelled included, so it always agrees
// with the unique (volunteer_id, event_id) index behind it.
func (r *repository) Exists(ctx context.Context, volunteerID, eventID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Registration{}).
		Where("volunteer_id = ? AND event_id = ?", volunteerID, eventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Create(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Registration, error) {
	var reg Registration
	if err := r.db.WithContext(ctx).First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) Update(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *repository) ListByEvent(ctx context.Context, eventID uint) ([]Registration, error) {
	var regs []Registration
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *repository) ListByVolunteer(ctx context.Context, volunteerID uint) ([]Registration, error) {
	var regs []Registration
	err := r.db.WithContext(ctx).
		Where("volunteer_id = ?", volunteerID).
		Order("created_at DESC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// IncrementRegistered bumps the counter only while capacity remains.
// One UPDATE guarded by the capacity predicate keeps concurrent
// registrations from overshooting max_volunteers. Returns false when
// the event filled up between the read and this write.
func (r *repository) IncrementRegistered(ctx context.Context, eventID uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&event.Event{}).
		Where("id = ? AND (max_volunteers IS NULL OR registered_volunteers < max_volunteers)", eventID).
		UpdateColumn("registered_volunteers", gorm.Expr("registered_volunteers + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) MarkFullIfAtCapacity(ctx context.Context, eventID uint) error {
	return r.db.WithContext(ctx).Model(&event.Event{}).
		Where("id = ? AND max_volunteers IS NOT NULL AND registered_volunteers >= max_volunteers AND status = ?", eventID, event.StatusOpen).
		UpdateColumn("status", event.StatusFull).Error
}

func (r *repository) MarkConfirmationSent(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&Registration{}).
		Where("id = ?", id).
		UpdateColumn("confirmation_sent", true).Error
}
