package models

import "time"

const (
	TourPending  = "pending"
	TourApproved = "approved"
	TourRejected = "rejected"
)

// PriceTier is one age band of a tour's price list (e.g. adult, child).
type PriceTier struct {
	Label  string `json:"label"`
	MinAge int    `json:"minAge"`
	MaxAge int    `json:"maxAge"`
	Price  int64  `json:"price"`
}

// Activity is one ordered entry of an itinerary day.
type Activity struct {
	Order       int    `json:"order"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Cost        int64  `json:"cost"`
}

// Day is one ordered itinerary day.
type Day struct {
	DayNumber  int        `json:"dayNumber"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Tour is a bookable itinerary offered by a partner.
type Tour struct {
	ID           int64       `json:"id"`
	PartnerID    int64       `json:"partnerId"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	Description  string      `json:"description"`
	Images       []string    `json:"images"`
	PriceTiers   []PriceTier `json:"priceTiers"`
	Itinerary    []Day       `json:"itinerary"`
	Status       string      `json:"status"`
	RejectReason string      `json:"rejectReason,omitempty"`
	Rating       float64     `json:"rating"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// StartingPrice returns the lowest tier price, or 0 when the tour has no tiers.
func (t Tour) StartingPrice() int64 {
	var min int64
	for i, tier := range t.PriceTiers {
		if i == 0 || tier.Price < min {
			min = tier.Price
		}
	}
	return min
}

// TourInput is the partner create/update form.
type TourInput struct {
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Images      []string    `json:"images"`
	PriceTiers  []PriceTier `json:"priceTiers"`
	Itinerary   []Day       `json:"itinerary"`
}
