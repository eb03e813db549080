package registration

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/CatholicOS/caritas-ai/internal/event"
	"github.com/CatholicOS/caritas-ai/internal/volunteer"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventNotOpen         = errors.New("event is not open for registration")
	ErrEventFull            = errors.New("event is full")
	ErrAlreadyRegistered    = errors.New("volunteer already registered for this event")
	ErrNameRequired         = errors.New("volunteer name is required")
	ErrEmailRequired        = errors.New("volunteer email is required")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNotCheckedIn         = errors.New("volunteer has not checked in")
)

// Notifier sends the confirmation email for a completed registration.
// Delivery is best effort and happens outside the transaction.
type Notifier interface {
	SendRegistrationConfirmation(ctx context.Context, email string, result *RegisterResult)
}

type Service struct {
	Repo     Repository
	Notifier Notifier
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{Repo: repo, Notifier: notifier}
}

// ============================
// 🔄 Register Volunteer For Event
// The whole flow runs in one transaction. The conditional counter
// update and the unique (volunteer, event) index make the flow safe
// under concurrent signups for the last spot.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*RegisterResult, error) {
	name := strings.TrimSpace(req.VolunteerName)
	email := strings.ToLower(strings.TrimSpace(req.VolunteerEmail))
	if email == "" {
		return nil, ErrEmailRequired
	}

	var result *RegisterResult

	err := s.Repo.WithTx(ctx, func(tx Repository) error {
		ev, err := tx.GetEvent(ctx, req.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if !ev.IsActive || ev.Status == event.StatusCancelled || ev.Status == event.StatusCompleted {
			return ErrEventNotOpen
		}
		if ev.Status == event.StatusFull {
			return ErrEventFull
		}
		if ev.MaxVolunteers != nil && ev.RegisteredVolunteers >= *ev.MaxVolunteers {
			return ErrEventFull
		}

		vol, err := tx.FindVolunteerByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// A name is only needed to create a new volunteer; returning
			// registrants are identified by email alone.
			if name == "" {
				return ErrNameRequired
			}
			first, last := volunteer.SplitName(name)
			vol = &volunteer.Volunteer{
				Email:     email,
				FirstName: first,
				LastName:  last,
				Phone:     strings.TrimSpace(req.VolunteerPhone),
			}
			if err := tx.CreateVolunteer(ctx, vol); err != nil {
				return err
			}
		}

		exists, err := tx.Exists(ctx, vol.ID, ev.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyRegistered
		}

		reg := &Registration{
			VolunteerID: vol.ID,
			EventID:     ev.ID,
			Status:      StatusConfirmed,
		}
		if err := tx.Create(ctx, reg); err != nil {
			return err
		}

		bumped, err := tx.IncrementRegistered(ctx, ev.ID)
		if err != nil {
			return err
		}
		if !bumped {
			return ErrEventFull
		}
		if err := tx.MarkFullIfAtCapacity(ctx, ev.ID); err != nil {
			return err
		}

		p, err := tx.GetParish(ctx, ev.ParishID)
		if err != nil {
			return err
		}
		coordinatorEmail := p.Email
		if coordinatorEmail == "" {
			coordinatorEmail = "contact@parish.org"
		}

		result = &RegisterResult{
			RegistrationID:   reg.ID,
			VolunteerName:    vol.FullName(),
			EventTitle:       ev.Title,
			EventDate:        ev.EventDate,
			ParishName:       p.Name,
			Coordinator:      "Parish Coordinator",
			CoordinatorEmail: coordinatorEmail,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Registered %s for event %d (registration %d)", email, req.EventID, result.RegistrationID)

	if s.Notifier != nil {
		s.Notifier.SendRegistrationConfirmation(context.WithoutCancel(ctx), email, result)
	}
	return result, nil
}

// ============================
// 🔄 Attendance
func (s *Service) CheckIn(ctx context.Context, id uint) (*Registration, error) {
	reg, err := s.getReg(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	reg.CheckedIn = true
	reg.CheckInTime = &now
	if err := s.Repo.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *Service) CheckOut(ctx context.Context, id uint) (*Registration, error) {
	reg, err := s.getReg(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reg.CheckedIn || reg.CheckInTime == nil {
		return nil, ErrNotCheckedIn
	}
	now := time.Now()
	hours := now.Sub(*reg.CheckInTime).Hours()
	reg.CheckOutTime = &now
	reg.HoursServed = &hours
	reg.Status = StatusCompleted
	if err := s.Repo.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *Service) SubmitFeedback(ctx context.Context, id uint, rating *int, feedback string) (*Registration, error) {
	reg, err := s.getReg(ctx, id)
	if err != nil {
		return nil, err
	}
	reg.Rating = rating
	reg.Feedback = feedback
	if err := s.Repo.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *Service) ListByEvent(ctx context.Context, eventID uint) ([]Registration, error) {
	regs, err := s.Repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []Registration{}
	}
	return regs, nil
}

func (s *Service) ListByVolunteer(ctx context.Context, volunteerID uint) ([]Registration, error) {
	regs, err := s.Repo.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []Registration{}
	}
	return regs, nil
}

func (s *Service) getReg(ctx context.Context, id uint) (*Registration, error) {
	reg, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}
