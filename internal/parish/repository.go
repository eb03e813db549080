package parish

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetParishByID(ctx context.Context, id uint) (*Parish, error)
	ListParishes(ctx context.Context, filter ListFilter) ([]Parish, int64, error)
	SearchParishesByName(ctx context.Context, name string, limit int) ([]Parish, error)
	FindNearby(ctx context.Context, city string, services []string, limit int) ([]Parish, error)
	ListStates(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) GetParishByID(ctx context.Context, id uint) (*Parish, error) {
	var p Parish
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ===========================
// 📄 List Parishes With Pagination & Filters
func (r *repository) ListParishes(ctx context.Context, filter ListFilter) ([]Parish, int64, error) {
	var parishes []Parish
	var total int64

	query := r.db.WithContext(ctx).Model(&Parish{}).Where("is_active = ?", true)

	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.Service != "" {
		query = query.Where("? = ANY(services)", filter.Service)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("name ASC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&parishes).Error

	return parishes, total, err
}

// ===========================
// 🔍 Search Parishes by partial name
func (r *repository) SearchParishesByName(ctx context.Context, name string, limit int) ([]Parish, error) {
	var parishes []Parish
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? AND is_active = ?", "%"+name+"%", true).
		Limit(limit).
		Find(&parishes).Error
	return parishes, err
}

// ===========================
// 📍 Find Parishes near a city, AND-matching every requested service
func (r *repository) FindNearby(ctx context.Context, city string, services []string, limit int) ([]Parish, error) {
	var parishes []Parish

	query := r.db.WithContext(ctx).Where("is_active = ?", true)

	if city != "" {
		query = query.Where("city ILIKE ?", "%"+city+"%")
	}
	for _, service := range services {
		query = query.Where("? = ANY(services)", service)
	}

	err := query.Limit(limit).Find(&parishes).Error
	return parishes, err
}

// ===========================
// 🗺 Distinct states with active parishes
func (r *repository) ListStates(ctx context.Context) ([]string, error) {
	var states []string
	err := r.db.WithContext(ctx).
		Model(&Parish{}).
		Where("state IS NOT NULL AND state <> '' AND is_active = ?", true).
		Distinct("state").
		Order("state ASC").
		Pluck("state", &states).Error
	return states, err
}
