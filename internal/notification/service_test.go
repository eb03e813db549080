package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	configured bool
	sendErr    error

	sentTo      []string
	subjects    []string
	attachments [][]byte
}

func (f *fakeSender) Configured() bool { return f.configured }

func (f *fakeSender) Send(to, subject, _ string, _ string, attachment []byte, _ string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sentTo = append(f.sentTo, to)
	f.subjects = append(f.subjects, subject)
	f.attachments = append(f.attachments, attachment)
	return nil
}

type fakeMarker struct {
	marked []uint
	err    error
}

func (f *fakeMarker) MarkConfirmationSent(_ context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	f.marked = append(f.marked, id)
	return nil
}

func confirmationFixture() ConfirmationMessage {
	return ConfirmationMessage{
		RegistrationID: 7,
		VolunteerName:  "Maria Garcia",
		VolunteerEmail: "maria@example.com",
		EventTitle:     "Food Pantry",
		EventDate:      time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC),
		ParishName:     "St. Mary's Church",
		ParishEmail:    "coordinator@stmarys.org",
	}
}

func TestDeliver_MarksConfirmationSent(t *testing.T) {
	sender := &fakeSender{configured: true}
	marker := &fakeMarker{}
	svc := NewService(nil, sender, marker)

	svc.deliver(confirmationFixture())

	require.Len(t, sender.sentTo, 1)
	assert.Equal(t, "maria@example.com", sender.sentTo[0])
	assert.Contains(t, sender.subjects[0], "Food Pantry")
	assert.NotEmpty(t, sender.attachments[0])
	assert.Equal(t, []uint{7}, marker.marked)
}

func TestDeliver_SkipsWhenSMTPUnconfigured(t *testing.T) {
	sender := &fakeSender{configured: false}
	marker := &fakeMarker{}
	svc := NewService(nil, sender, marker)

	svc.deliver(confirmationFixture())

	assert.Empty(t, sender.sentTo)
	assert.Empty(t, marker.marked)
}

func TestDeliver_SendFailureLeavesUnmarked(t *testing.T) {
	sender := &fakeSender{configured: true, sendErr: errors.New("smtp: connection refused")}
	marker := &fakeMarker{}
	svc := NewService(nil, sender, marker)

	svc.deliver(confirmationFixture())

	assert.Empty(t, marker.marked)
}

func TestDeliver_NilMarkerStillSends(t *testing.T) {
	sender := &fakeSender{configured: true}
	svc := NewService(nil, sender, nil)

	svc.deliver(confirmationFixture())

	assert.Len(t, sender.sentTo, 1)
}
