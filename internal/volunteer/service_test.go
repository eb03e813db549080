package volunteer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeVolunteerRepo struct {
	volunteers map[uint]*Volunteer
	updated    []*Volunteer
}

func (f *fakeVolunteerRepo) GetVolunteerByID(_ context.Context, id uint) (*Volunteer, error) {
	if v, ok := f.volunteers[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVolunteerRepo) FindByEmail(_ context.Context, email string) (*Volunteer, error) {
	for _, v := range f.volunteers {
		if v.Email == email {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVolunteerRepo) Update(_ context.Context, v *Volunteer) error {
	f.volunteers[v.ID] = v
	f.updated = append(f.updated, v)
	return nil
}

func strPtr(s string) *string { return &s }

func TestSplitName(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
	}{
		{"Maria Garcia Lopez", "Maria", "Garcia Lopez"},
		{"John Doe", "John", "Doe"},
		{"Cher", "Cher", ""},
		{"  Ana  ", "Ana", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		first, last := SplitName(c.in)
		assert.Equal(t, c.first, first, "input %q", c.in)
		assert.Equal(t, c.last, last, "input %q", c.in)
	}
}

func TestGetVolunteerByID_NotFound(t *testing.T) {
	svc := NewService(&fakeVolunteerRepo{volunteers: map[uint]*Volunteer{}})

	_, err := svc.GetVolunteerByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrVolunteerNotFound)
}

func TestGetVolunteerByEmail_Normalizes(t *testing.T) {
	repo := &fakeVolunteerRepo{volunteers: map[uint]*Volunteer{
		3: {ID: 3, Email: "maria@example.com", FirstName: "Maria"},
	}}
	svc := NewService(repo)

	v, err := svc.GetVolunteerByEmail(context.Background(), "  Maria@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, uint(3), v.ID)

	_, err = svc.GetVolunteerByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrVolunteerNotFound)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	repo := &fakeVolunteerRepo{volunteers: map[uint]*Volunteer{
		3: {ID: 3, Email: "maria@example.com", FirstName: "Maria", LastName: "Garcia", Phone: "555-0101"},
	}}
	svc := NewService(repo)

	v, err := svc.UpdateProfile(context.Background(), 3, ProfileUpdate{
		Phone:  strPtr(" 555-0202 "),
		Skills: []string{" Cooking ", "TEACHING", ""},
		State:  strPtr("md"),
	})
	require.NoError(t, err)

	// Untouched fields keep their values.
	assert.Equal(t, "Maria", v.FirstName)
	assert.Equal(t, "Garcia", v.LastName)
	assert.Equal(t, "555-0202", v.Phone)
	assert.Equal(t, []string{"cooking", "teaching"}, []string(v.Skills))
	assert.Equal(t, "MD", v.State)
	require.Len(t, repo.updated, 1)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	svc := NewService(&fakeVolunteerRepo{volunteers: map[uint]*Volunteer{}})

	_, err := svc.UpdateProfile(context.Background(), 9, ProfileUpdate{Phone: strPtr("555")})
	assert.ErrorIs(t, err, ErrVolunteerNotFound)
}

func TestFullName(t *testing.T) {
	v := Volunteer{FirstName: "Maria", LastName: "Garcia"}
	assert.Equal(t, "Maria Garcia", v.FullName())

	solo := Volunteer{FirstName: "Cher"}
	assert.Equal(t, "Cher", solo.FullName())
}
