package volunteer

import (
	"context"

	"gorm.io/gorm"
)

// ============================
// 🔁 Repository Interface
type Repository interface {
	GetVolunteerByID(ctx context.Context, id uint) (*Volunteer, error)
	FindByEmail(ctx context.Context, email string) (*Volunteer, error)
	Update(ctx context.Context, v *Volunteer) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetVolunteerByID(ctx context.Context, id uint) (*Volunteer, error) {
	var v Volunteer
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Volunteer, error) {
	var v Volunteer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) Update(ctx context.Context, v *Volunteer) error {
	return r.db.WithContext(ctx).Save(v).Error
}
