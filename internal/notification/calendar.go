package notification

import (
	"fmt"
	"strings"
	"time"
)

// BuildCalendarInvite renders an iCalendar REQUEST for an event so
// mail clients offer to add it. Events default to a two hour duration.
func BuildCalendarInvite(title, description, location, organizerName, organizerEmail string, start time.Time) []byte {
	if description == "" {
		description = "Volunteer opportunity"
	}
	end := start.Add(2 * time.Hour)
	now := time.Now().UTC()

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("PRODID:-//CaritasAI//Volunteer Event//EN")
	line("VERSION:2.0")
	line("METHOD:REQUEST")
	line("BEGIN:VEVENT")
	line("UID:" + fmt.Sprintf("%d-%s@caritasai", start.Unix(), icsEscape(title)))
	line("SUMMARY:" + icsEscape(title))
	line("DESCRIPTION:" + icsEscape(description))
	line("LOCATION:" + icsEscape(location))
	line("DTSTART:" + start.UTC().Format("20060102T150405Z"))
	line("DTEND:" + end.UTC().Format("20060102T150405Z"))
	line("DTSTAMP:" + now.Format("20060102T150405Z"))
	line(fmt.Sprintf("ORGANIZER;CN=%s:MAILTO:%s", icsEscape(organizerName), organizerEmail))
	line("STATUS:CONFIRMED")
	line("SEQUENCE:0")
	line("PRIORITY:5")
	line("END:VEVENT")
	line("END:VCALENDAR")

	return []byte(b.String())
}

func icsEscape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
