package parish

import (
	"time"

	"github.com/lib/pq"
)

// ============================
// 🔷 GORM Parish Model
type Parish struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Name     string         `gorm:"type:varchar(255);not null;index" json:"name"`
	Address  string         `gorm:"type:varchar(255)" json:"address"`
	City     string         `gorm:"type:varchar(100);index" json:"city"`
	State    string         `gorm:"type:varchar(2);index" json:"state"`
	ZipCode  string         `gorm:"type:varchar(10)" json:"zip_code"`
	Email    string         `gorm:"type:varchar(255)" json:"email"`
	Services pq.StringArray `gorm:"type:text[]" json:"services"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Parish) TableName() string {
	return "parishes"
}

// ============================
// 🟡 List Filter
type ListFilter struct {
	City    string
	State   string
	Service string
	Skip    int
	Limit   int
}

// ============================
// 🟠 List Response envelope
type ListResponse struct {
	Total    int64    `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Parishes []Parish `json:"parishes"`
}
