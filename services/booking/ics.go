package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"clipperz/models"
)

const icsTimeLayout = "20060102T150405Z"

// GenerateICS renders a single VCALENDAR/VEVENT invite for the requested
// slot. Events are always one hour long regardless of the selected
// service, and timestamps are emitted as UTC. Lines are CRLF-joined with
// no trailing newline, matching what calendar applications import.
func GenerateICS(req models.BookingRequest, salonAddress string) (string, error) {
	return generateICSAt(req, salonAddress, time.Now().UTC())
}

func generateICSAt(req models.BookingRequest, salonAddress string, now time.Time) (string, error) {
	start, err := parseSlot(req.PreferredDate, req.PreferredTime)
	if err != nil {
		return "", err
	}
	end := start.Add(60 * time.Minute)

	if salonAddress == "" {
		salonAddress = "CLIPPERZ Salon"
	}

	uid := fmt.Sprintf("booking-%d@clipperz.com", now.UnixMilli())
	// The \n sequences are literal ICS escapes, not newlines.
	description := fmt.Sprintf(`Appointment at CLIPPERZ\n\nService: %s\nClient: %s\n\nAddress: %s`,
		req.Service, req.Name, salonAddress)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//CLIPPERZ//Booking System//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTART:" + start.Format(icsTimeLayout),
		"DTEND:" + end.Format(icsTimeLayout),
		"DTSTAMP:" + now.Format(icsTimeLayout),
		fmt.Sprintf("SUMMARY:%s - CLIPPERZ", req.Service),
		"DESCRIPTION:" + description,
		"LOCATION:" + salonAddress,
		"STATUS:TENTATIVE",
		"SEQUENCE:0",
		"BEGIN:VALARM",
		"TRIGGER:-PT15M",
		"DESCRIPTION:Reminder",
		"ACTION:DISPLAY",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n"), nil
}

// InviteFilename names the downloadable invite after the booking date.
func InviteFilename(req models.BookingRequest) string {
	return fmt.Sprintf("clipperz-booking-%s.ics", req.PreferredDate)
}

// parseSlot combines the form's date and "HH:MM" time into a UTC start
// timestamp. The hour and minute must be colon-separated and numeric.
func parseSlot(date, clock string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid preferred date %q: %w", date, err)
	}

	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid preferred time %q", clock)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid preferred time %q: %w", clock, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid preferred time %q: %w", clock, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}
