package event

import (
	"time"

	"github.com/lib/pq"

	"github.com/CatholicOS/caritas-ai/internal/parish"
)

// Event status values. open → full happens when a registration reaches
// capacity; cancelled/completed are administrative.
const (
	StatusOpen      = "open"
	StatusFull      = "full"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ParishID     uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"parish_id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	EventDate    time.Time      `gorm:"not null;index" json:"event_date"`
	SkillsNeeded pq.StringArray `gorm:"type:text[]" json:"skills_needed"`

	MaxVolunteers        *int   `json:"max_volunteers"`
	RegisteredVolunteers int    `gorm:"default:0" json:"registered_volunteers"`
	Status               string `gorm:"type:varchar(50);default:'open';index" json:"status"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Parish *parish.Parish `gorm:"foreignKey:ParishID" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

// SpotsAvailable returns remaining capacity, or nil for unlimited events.
func (e *Event) SpotsAvailable() *int {
	if e.MaxVolunteers == nil {
		return nil
	}
	n := *e.MaxVolunteers - e.RegisteredVolunteers
	if n < 0 {
		n = 0
	}
	return &n
}

// ============================
// 🟡 Opportunity projection: event joined with its parish fields,
// consumed by the search API and the agent's search tool.
type Opportunity struct {
	Event
	ParishName    string `gorm:"column:parish_name" json:"parish_name"`
	ParishCity    string `gorm:"column:parish_city" json:"parish_city"`
	ParishState   string `gorm:"column:parish_state" json:"parish_state"`
	ParishAddress string `gorm:"column:parish_address" json:"parish_address"`
}

// ============================
// 🟠 Filters
type ListFilter struct {
	ParishID uint
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
	Skill    string
	Skip     int
	Limit    int
}

type SearchFilter struct {
	Location  string
	Skills    []string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

type ListResponse struct {
	Total  int64   `json:"total"`
	Skip   int     `json:"skip"`
	Limit  int     `json:"limit"`
	Events []Event `json:"events"`
}
