package models

// ItineraryRequest is the composed trip-planning request sent to a generator.
type ItineraryRequest struct {
	Destination string   `json:"destination"`
	Departure   string   `json:"departure"`
	TravelDate  string   `json:"travelDate"`
	Days        int      `json:"days"`
	People      int      `json:"people"`
	Preferences []string `json:"preferences"`
	Budget      int64    `json:"budget"`
}

// GeneratedItinerary is an AI-produced plan.
type GeneratedItinerary struct {
	Destination string   `json:"destination"`
	TravelDate  string   `json:"travelDate"`
	Days        int      `json:"days"`
	Preferences []string `json:"preferences"`
	Budget      int64    `json:"budget"`
	Plan        []Day    `json:"plan"`
}

// TotalCost sums every activity cost.
func (g GeneratedItinerary) TotalCost() int64 {
	var total int64
	for _, d := range g.Plan {
		for _, a := range d.Activities {
			total += a.Cost
		}
	}
	return total
}
