package volunteer

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrVolunteerNotFound = errors.New("volunteer not found")

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) GetVolunteerByID(ctx context.Context, id uint) (*Volunteer, error) {
	v, err := s.Repo.GetVolunteerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) GetVolunteerByEmail(ctx context.Context, email string) (*Volunteer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	v, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, err
	}
	return v, nil
}

// ProfileUpdate carries the fields a volunteer may change. Nil fields
// are left untouched; the email is fixed, it identifies the account.
type ProfileUpdate struct {
	FirstName *string  `json:"first_name"`
	LastName  *string  `json:"last_name"`
	Phone     *string  `json:"phone"`
	Skills    []string `json:"skills"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
}

func (s *Service) UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*Volunteer, error) {
	v, err := s.GetVolunteerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.FirstName != nil {
		v.FirstName = strings.TrimSpace(*upd.FirstName)
	}
	if upd.LastName != nil {
		v.LastName = strings.TrimSpace(*upd.LastName)
	}
	if upd.Phone != nil {
		v.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.Skills != nil {
		skills := make([]string, 0, len(upd.Skills))
		for _, sk := range upd.Skills {
			if sk = strings.ToLower(strings.TrimSpace(sk)); sk != "" {
				skills = append(skills, sk)
			}
		}
		v.Skills = skills
	}
	if upd.City != nil {
		v.City = strings.TrimSpace(*upd.City)
	}
	if upd.State != nil {
		v.State = strings.ToUpper(strings.TrimSpace(*upd.State))
	}

	if err := s.Repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// SplitName breaks a full display name into first and last on the first
// space. "Maria Garcia Lopez" becomes ("Maria", "Garcia Lopez").
func SplitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i], strings.TrimSpace(name[i+1:])
	}
	return name, ""
}
