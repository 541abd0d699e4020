package notification

import (
	"fmt"
	"html"
	"strings"

	"clipperz/models"
)

const (
	wrapperOpen = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`
	headingTmpl = `<h1 style="color: #1f2937; border-bottom: 2px solid #f59e0b; padding-bottom: 10px;">%s</h1>`
	tableOpen   = `<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">`
	cellStyle   = `padding: 12px; border: 1px solid #e5e7eb;`
)

func esc(s string) string {
	return html.EscapeString(s)
}

// tableWriter emits label/value rows with alternating shading.
type tableWriter struct {
	b      strings.Builder
	shaded bool
}

func (w *tableWriter) row(label, valueHTML string) {
	bg := ""
	if w.shaded {
		bg = ` style="background-color: #f9fafb;"`
	}
	fmt.Fprintf(&w.b, `<tr%s><td style="%s font-weight: bold;">%s</td><td style="%s">%s</td></tr>`,
		bg, cellStyle, label, cellStyle, valueHTML)
	w.shaded = !w.shaded
}

func mailtoLink(email string) string {
	return fmt.Sprintf(`<a href="mailto:%s" style="color: #3b82f6;">%s</a>`, esc(email), esc(email))
}

func telLink(phone string) string {
	return fmt.Sprintf(`<a href="tel:%s" style="color: #3b82f6;">%s</a>`, esc(phone), esc(phone))
}

// bookingOwnerBody renders the notification sent to the salon inbox,
// enumerating every submitted field. Optional fields only get a row when
// the client filled them in.
func bookingOwnerBody(req models.BookingRequest) string {
	w := &tableWriter{shaded: true}
	w.b.WriteString(wrapperOpen)
	fmt.Fprintf(&w.b, headingTmpl, "New Booking Request - CLIPPERZ")
	w.b.WriteString(tableOpen)

	w.row("Service", esc(req.Service))
	if len(req.AddOns) > 0 {
		w.row("Add-ons", esc(strings.Join(req.AddOns, ", ")))
	}
	if req.Barber != "" {
		w.row("Preferred Barber", esc(req.Barber))
	}
	w.row("Date", esc(req.PreferredDate))
	w.row("Time", esc(req.PreferredTime))
	w.row("Name", esc(req.Name))
	w.row("Email", mailtoLink(req.Email))
	w.row("Phone", telLink(req.Phone))
	if req.Notes != "" {
		w.row("Notes", esc(req.Notes))
	}

	w.b.WriteString(`</table>`)
	w.b.WriteString(`<p style="margin-top: 20px; color: #6b7280;">This booking request was submitted through the CLIPPERZ website.</p>`)
	w.b.WriteString(`</div>`)
	return w.b.String()
}

// bookingCustomerBody renders the confirmation sent back to the requester,
// summarizing the request and the salon's contact details.
func bookingCustomerBody(req models.BookingRequest, phone, ownerEmail, address string) string {
	var b strings.Builder
	b.WriteString(wrapperOpen)
	fmt.Fprintf(&b, headingTmpl, "Booking Confirmation - CLIPPERZ")
	fmt.Fprintf(&b, `<p>Hi %s,</p>`, esc(req.Name))
	b.WriteString(`<p>Thank you for your booking request! We've received your request for:</p>`)

	b.WriteString(`<div style="background-color: #f9fafb; padding: 20px; margin: 20px 0; border-left: 4px solid #f59e0b;">`)
	fmt.Fprintf(&b, `<p><strong>Service:</strong> %s</p>`, esc(req.Service))
	if len(req.AddOns) > 0 {
		fmt.Fprintf(&b, `<p><strong>Add-ons:</strong> %s</p>`, esc(strings.Join(req.AddOns, ", ")))
	}
	if req.Barber != "" {
		fmt.Fprintf(&b, `<p><strong>Preferred Barber:</strong> %s</p>`, esc(req.Barber))
	}
	fmt.Fprintf(&b, `<p><strong>Date:</strong> %s</p>`, esc(req.PreferredDate))
	fmt.Fprintf(&b, `<p><strong>Time:</strong> %s</p>`, esc(req.PreferredTime))
	b.WriteString(`</div>`)

	b.WriteString(`<p>We'll contact you within 24 hours to confirm your appointment and discuss any details.</p>`)
	b.WriteString(`<p>If you have any questions, please don't hesitate to reach out:</p>`)
	fmt.Fprintf(&b, `<ul><li>Phone: %s</li><li>Email: %s</li></ul>`, esc(phone), esc(ownerEmail))
	b.WriteString(`<p>Looking forward to seeing you at CLIPPERZ!</p>`)
	fmt.Fprintf(&b, `<p style="margin-top: 30px; color: #6b7280; font-size: 14px;">%s</p>`, esc(address))
	b.WriteString(`</div>`)
	return b.String()
}

// contactBody renders a contact form submission for the salon inbox.
func contactBody(req models.ContactRequest) string {
	w := &tableWriter{shaded: true}
	w.b.WriteString(wrapperOpen)
	fmt.Fprintf(&w.b, headingTmpl, "Contact Form Submission - CLIPPERZ")
	w.b.WriteString(tableOpen)

	w.row("Name", esc(req.Name))
	w.row("Email", mailtoLink(req.Email))
	if req.Phone != "" {
		w.row("Phone", telLink(req.Phone))
	}
	w.row("Subject", esc(req.Subject))
	w.row("Message", strings.ReplaceAll(esc(req.Message), "\n", "<br>"))

	w.b.WriteString(`</table>`)
	w.b.WriteString(`<p style="margin-top: 20px; color: #6b7280;">This message was submitted through the CLIPPERZ contact form.</p>`)
	w.b.WriteString(`</div>`)
	return w.b.String()
}
