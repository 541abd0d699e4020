package models

// BookingRequest is a user-submitted appointment request from the booking
// form. It is not a confirmed reservation; staff follow up to confirm.
type BookingRequest struct {
	Service       string   `json:"service" validate:"required"`
	AddOns        []string `json:"addOns"`
	Barber        string   `json:"barber"`
	PreferredDate string   `json:"preferredDate" validate:"required"`
	PreferredTime string   `json:"preferredTime" validate:"required"`
	Notes         string   `json:"notes"`
	Name          string   `json:"name" validate:"required,min=2"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone" validate:"required,min=10"`
}

// Normalize fills defaults for optional collections. An omitted addOns field
// becomes an empty list rather than nil.
func (r *BookingRequest) Normalize() {
	if r.AddOns == nil {
		r.AddOns = []string{}
	}
}
