// Package catalog holds the salon's static offering: the bookable services,
// optional add-ons, staff, and the time slots the booking form presents.
// There is no datastore behind it; the catalog changes with deployments.
package catalog

import "clipperz/models"

// Services offered by the salon. Durations are minutes; the calendar invite
// generator does not consult them and always books a one-hour event.
var Services = []models.ServiceType{
	{ID: "classic-cut", Label: "Classic Cut", Duration: 30, Price: 35},
	{ID: "premium-cut", Label: "Premium Cut & Style", Duration: 45, Price: 50},
	{ID: "beard-trim", Label: "Beard Trim", Duration: 20, Price: 25},
	{ID: "hot-towel-shave", Label: "Hot Towel Shave", Duration: 45, Price: 45},
	{ID: "cut-and-beard", Label: "Cut & Beard Combo", Duration: 60, Price: 65},
	{ID: "head-shave", Label: "Head Shave", Duration: 30, Price: 40},
}

// AddOns selectable alongside any service.
var AddOns = []models.AddOn{
	{ID: "hot-towel", Label: "Hot Towel Treatment", Price: 10},
	{ID: "hair-wash", Label: "Hair Wash & Condition", Price: 15},
	{ID: "scalp-massage", Label: "Scalp Massage", Price: 20},
	{ID: "beard-oil", Label: "Premium Beard Oil", Price: 25},
}

// Barbers a client may request. "any" means no preference.
var Barbers = []models.Barber{
	{ID: "any", Name: "No Preference"},
	{ID: "mike", Name: "Mike Rodriguez"},
	{ID: "david", Name: "David Chen"},
	{ID: "alex", Name: "Alex Thompson"},
	{ID: "james", Name: "James Wilson"},
}

// TimeSlots are the half-hour slots the booking form offers.
var TimeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM",
	"6:00 PM", "6:30 PM",
}

// ServiceByID returns the service with the given identifier.
func ServiceByID(id string) (models.ServiceType, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return models.ServiceType{}, false
}

// AddOnByID returns the add-on with the given identifier.
func AddOnByID(id string) (models.AddOn, bool) {
	for _, a := range AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return models.AddOn{}, false
}

// BarberByID returns the barber with the given identifier.
func BarberByID(id string) (models.Barber, bool) {
	for _, b := range Barbers {
		if b.ID == id {
			return b, true
		}
	}
	return models.Barber{}, false
}
