package booking

import (
	"strings"
	"testing"
	"time"

	"clipperz/models"
	"clipperz/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking() models.BookingRequest {
	return models.BookingRequest{
		Service:       "classic-cut",
		AddOns:        []string{},
		PreferredDate: "2025-06-10",
		PreferredTime: "14:30",
		Name:          "Jo Smith",
		Email:         "jo@example.com",
		Phone:         "5551234567",
	}
}

// icsLine returns the value of the first line with the given prefix.
func icsLine(t *testing.T, body, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(body, "\r\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	t.Fatalf("no line with prefix %q in:\n%s", prefix, body)
	return ""
}

func TestGenerateICSKnownSlot(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	body, err := generateICSAt(testBooking(), "123 Main Street, Anytown, ST 12345", now)
	require.NoError(t, err)

	assert.Equal(t, "20250610T143000Z", icsLine(t, body, "DTSTART:"))
	assert.Equal(t, "20250610T153000Z", icsLine(t, body, "DTEND:"))
	assert.Equal(t, "classic-cut - CLIPPERZ", icsLine(t, body, "SUMMARY:"))
	assert.Equal(t, "123 Main Street, Anytown, ST 12345", icsLine(t, body, "LOCATION:"))
	assert.Equal(t, "TENTATIVE", icsLine(t, body, "STATUS:"))
	assert.Equal(t, "-PT15M", icsLine(t, body, "TRIGGER:"))

	// The description embeds literal \n escapes, not real newlines.
	assert.Contains(t, body, `DESCRIPTION:Appointment at CLIPPERZ\n\nService: classic-cut\nClient: Jo Smith\n\nAddress: 123 Main Street, Anytown, ST 12345`)

	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(body, "END:VCALENDAR"), "no trailing newline expected")
}

// Every service gets a one-hour event, even though the catalog knows each
// service's real duration.
func TestGenerateICSAlwaysSpansOneHour(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, svc := range catalog.Services {
		req := testBooking()
		req.Service = svc.ID

		body, err := generateICSAt(req, "", now)
		require.NoError(t, err)

		start, err := time.Parse(icsTimeLayout, icsLine(t, body, "DTSTART:"))
		require.NoError(t, err)
		end, err := time.Parse(icsTimeLayout, icsLine(t, body, "DTEND:"))
		require.NoError(t, err)

		assert.Equal(t, 60*time.Minute, end.Sub(start), "service %s (catalog duration %d min)", svc.ID, svc.Duration)
	}
}

func TestGenerateICSStableCoreFields(t *testing.T) {
	first, err := generateICSAt(testBooking(), "addr", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := generateICSAt(testBooking(), "addr", time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	for _, prefix := range []string{"DTSTART:", "DTEND:", "SUMMARY:", "DESCRIPTION:", "LOCATION:"} {
		assert.Equal(t, icsLine(t, first, prefix), icsLine(t, second, prefix), prefix)
	}
	assert.NotEqual(t, icsLine(t, first, "UID:"), icsLine(t, second, "UID:"))
	assert.NotEqual(t, icsLine(t, first, "DTSTAMP:"), icsLine(t, second, "DTSTAMP:"))
}

func TestGenerateICSDefaultsLocation(t *testing.T) {
	body, err := generateICSAt(testBooking(), "", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, "CLIPPERZ Salon", icsLine(t, body, "LOCATION:"))
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		date, clock string
		wantErr     bool
	}{
		{"2025-06-10", "14:30", false},
		{"2025-06-10", "9:05", false},
		{"2025-06-10", "2pm", true},
		{"2025-06-10", "14.30", true},
		{"2025-06-10", "14:30 PM", true},
		{"June 10 2025", "14:30", true},
		{"", "14:30", true},
	}

	for _, tt := range tests {
		t.Run(tt.date+" "+tt.clock, func(t *testing.T) {
			got, err := parseSlot(tt.date, tt.clock)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestInviteFilename(t *testing.T) {
	req := testBooking()
	assert.Equal(t, "clipperz-booking-2025-06-10.ics", InviteFilename(req))
}
