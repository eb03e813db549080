package volunteer

import (
	"time"

	"github.com/lib/pq"
)

// ============================
// 🔷 GORM Volunteer Model
type Volunteer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	FirstName string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string         `gorm:"type:varchar(100)" json:"last_name"`
	Phone     string         `gorm:"type:varchar(20)" json:"phone"`
	Skills    pq.StringArray `gorm:"type:text[]" json:"skills"`
	City      string         `gorm:"type:varchar(100)" json:"city"`
	State     string         `gorm:"type:varchar(2)" json:"state"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}

// FullName joins first and last name, skipping an empty last name.
func (v *Volunteer) FullName() string {
	if v.LastName == "" {
		return v.FirstName
	}
	return v.FirstName + " " + v.LastName
}
