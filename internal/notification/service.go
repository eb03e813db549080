package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/CatholicOS/caritas-ai/config"
	"github.com/CatholicOS/caritas-ai/internal/registration"
	"github.com/CatholicOS/caritas-ai/utils"
)

// ConfirmationMessage is the payload published for each registration.
type ConfirmationMessage struct {
	RegistrationID uint      `json:"registration_id"`
	VolunteerName  string    `json:"volunteer_name"`
	VolunteerEmail string    `json:"volunteer_email"`
	EventTitle     string    `json:"event_title"`
	EventDate      time.Time `json:"event_date"`
	ParishName     string    `json:"parish_name"`
	ParishEmail    string    `json:"parish_email"`
}

// MailSender is what the delivery path needs from the SMTP layer.
type MailSender interface {
	Configured() bool
	Send(to, subject, htmlBody, replyTo string, attachment []byte, attachmentName string) error
}

// ConfirmationMarker records that a registration's confirmation email
// went out. Satisfied by the registration repository.
type ConfirmationMarker interface {
	MarkConfirmationSent(ctx context.Context, id uint) error
}

type Service struct {
	cfg    *config.Config
	sender MailSender
	marker ConfirmationMarker
}

func NewService(cfg *config.Config, sender MailSender, marker ConfirmationMarker) *Service {
	return &Service{cfg: cfg, sender: sender, marker: marker}
}

// SendRegistrationConfirmation queues the confirmation email through
// Kafka when available, or sends it inline on a goroutine otherwise.
// Delivery is best effort: a registration never fails because its
// confirmation could not be sent.
func (s *Service) SendRegistrationConfirmation(ctx context.Context, email string, result *registration.RegisterResult) {
	msg := ConfirmationMessage{
		RegistrationID: result.RegistrationID,
		VolunteerName:  result.VolunteerName,
		VolunteerEmail: email,
		EventTitle:     result.EventTitle,
		EventDate:      result.EventDate,
		ParishName:     result.ParishName,
		ParishEmail:    result.CoordinatorEmail,
	}

	if utils.IsKafkaEnabled() {
		b, err := json.Marshal(msg)
		if err != nil {
			log.Printf("❌ Failed to marshal confirmation: %v", err)
			return
		}
		key := strconv.FormatUint(uint64(msg.RegistrationID), 10)
		if err := utils.PublishMessage(ctx, key, b); err != nil {
			log.Printf("⚠️ Kafka publish failed, sending inline: %v", err)
			go s.deliver(msg)
		}
		return
	}

	go s.deliver(msg)
}

// StartKafkaConsumer drains the confirmation topic and delivers each
// queued email. Runs until the process exits.
func StartKafkaConsumer(svc *Service) {
	if !utils.IsKafkaEnabled() {
		return
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: utils.KafkaBrokers(),
		Topic:   svc.cfg.KafkaRegistrationTopic,
		GroupID: "caritas-notifications",
	})

	go func() {
		log.Printf("🔄 Kafka consumer started (topic: %s)", svc.cfg.KafkaRegistrationTopic)
		for {
			m, err := reader.ReadMessage(context.Background())
			if err != nil {
				log.Printf("❌ Kafka consumer stopped: %v", err)
				return
			}

			var msg ConfirmationMessage
			if err := json.Unmarshal(m.Value, &msg); err != nil {
				log.Printf("⚠️ Skipping malformed confirmation message: %v", err)
				continue
			}
			svc.deliver(msg)
		}
	}()
}

func (s *Service) deliver(msg ConfirmationMessage) {
	if !s.sender.Configured() {
		log.Printf("⚠️ SMTP not configured, skipping confirmation for %s", msg.VolunteerEmail)
		return
	}

	invite := BuildCalendarInvite(
		msg.EventTitle,
		"Volunteer opportunity",
		msg.ParishName,
		msg.ParishName,
		msg.ParishEmail,
		msg.EventDate,
	)

	subject := fmt.Sprintf("✅ Confirmed: %s - %s", msg.EventTitle, msg.ParishName)
	body := buildConfirmationHTML(msg)

	if err := s.sender.Send(msg.VolunteerEmail, subject, body, msg.ParishEmail, invite, "event.ics"); err != nil {
		log.Printf("❌ Failed to send confirmation to %s: %v", msg.VolunteerEmail, err)
		return
	}
	log.Printf("✅ Confirmation sent to %s (registration %d)", msg.VolunteerEmail, msg.RegistrationID)

	if s.marker != nil {
		if err := s.marker.MarkConfirmationSent(context.Background(), msg.RegistrationID); err != nil {
			log.Printf("⚠️ Failed to flag confirmation %d as sent: %v", msg.RegistrationID, err)
		}
	}
}

func buildConfirmationHTML(msg ConfirmationMessage) string {
	dateFormatted := msg.EventDate.Format("Monday, January 2, 2006 at 3:04 PM")

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: linear-gradient(135deg, #DC2626, #991B1B); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
  .content { background: #f9fafb; padding: 30px; border-radius: 0 0 8px 8px; }
  .event-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #DC2626; }
  .event-details h3 { margin-top: 0; color: #DC2626; }
  .detail-row { margin: 10px 0; }
  .detail-label { font-weight: bold; color: #666; }
  .footer { text-align: center; color: #666; font-size: 12px; margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🙏 Registration Confirmed!</h1>
      <p>Thank you for serving your community</p>
    </div>
    <div class="content">
      <p>Dear %s,</p>
      <p>Your registration has been confirmed! We're grateful for your commitment to serve.</p>
      <div class="event-details">
        <h3>📅 Event Details</h3>
        <div class="detail-row"><span class="detail-label">Event:</span> %s</div>
        <div class="detail-row"><span class="detail-label">Date &amp; Time:</span> %s</div>
        <div class="detail-row"><span class="detail-label">Location:</span> %s</div>
      </div>
      <p><strong>📎 Calendar Invitation:</strong> A calendar invitation (.ics file) is attached to this email. Click it to add this event to your calendar!</p>
      <p><strong>📧 Questions?</strong> Reply to this email to contact %s</p>
      <p style="margin-top: 30px; font-style: italic; color: #666;">
        "Whoever is generous to the poor lends to the Lord, and he will repay him for his deed." - Proverbs 19:17
      </p>
    </div>
    <div class="footer">
      <p>CaritasAI - Serving the Church's Mission of Evangelization Through Service</p>
      <p>Reply to this email to contact %s</p>
    </div>
  </div>
</body>
</html>`,
		msg.VolunteerName,
		msg.EventTitle,
		dateFormatted,
		msg.ParishName,
		msg.ParishName,
		msg.ParishName,
	)
}

var _ registration.Notifier = (*Service)(nil)
