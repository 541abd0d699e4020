// models/catalog.go
package models

// ServiceType represents a bookable service offered by the salon.
type ServiceType struct {
	ID       string `json:"id"`       // e.g., "classic-cut"
	Label    string `json:"label"`    // display name
	Duration int    `json:"duration"` // in minutes
	Price    int    `json:"price"`    // in USD
}

// AddOn is an optional extra selectable alongside a primary service.
type AddOn struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int    `json:"price"`
}

// Barber is a staff member a client may request.
type Barber struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
