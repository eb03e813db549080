package registration

import (
	"time"
)

// Registration status values.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ============================
// 🔷 GORM Registration Model
// The (volunteer_id, event_id) unique index is what makes double
// registration impossible even under concurrent requests.
type Registration struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	VolunteerID uint `gorm:"not null;uniqueIndex:idx_volunteer_event" json:"volunteer_id"`
	EventID     uint `gorm:"not null;uniqueIndex:idx_volunteer_event;index" json:"event_id"`

	Status       string     `gorm:"type:varchar(50);default:'confirmed'" json:"status"`
	CheckedIn    bool       `gorm:"default:false" json:"checked_in"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	HoursServed  *float64   `gorm:"type:numeric(5,2)" json:"hours_served"`

	Notes    string `gorm:"type:text" json:"notes"`
	Rating   *int   `json:"rating"`
	Feedback string `gorm:"type:text" json:"feedback"`

	ConfirmationSent bool      `gorm:"default:false" json:"confirmation_sent"`
	ReminderSent     bool      `gorm:"default:false" json:"reminder_sent"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Registration) TableName() string {
	return "registrations"
}

// ============================
// 🟡 Request / Response payloads
// RegisterRequest identifies the volunteer by email; the name is only
// needed when that email is not registered yet.
type RegisterRequest struct {
	EventID        uint   `json:"event_id" binding:"required"`
	VolunteerName  string `json:"volunteer_name"`
	VolunteerEmail string `json:"volunteer_email" binding:"required,email"`
	VolunteerPhone string `json:"volunteer_phone"`
}

type RegisterResult struct {
	RegistrationID   uint      `json:"registration_id"`
	VolunteerName    string    `json:"volunteer_name"`
	EventTitle       string    `json:"event_title"`
	EventDate        time.Time `json:"event_date"`
	ParishName       string    `json:"parish_name"`
	Coordinator      string    `json:"coordinator"`
	CoordinatorEmail string    `json:"coordinator_email"`
}
