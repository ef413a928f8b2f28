package models

// Plan is a subscription tier limiting daily itinerary generation requests.
type Plan struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	Description      string `json:"description"`
	MaxDailyRequests int    `json:"maxDailyRequests"`
}

// PlanInput is the admin create/update form.
type PlanInput struct {
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	Description      string `json:"description"`
	MaxDailyRequests int    `json:"maxDailyRequests"`
}

// Subscription is the caller's current plan.
type Subscription struct {
	PlanID     int64  `json:"planId"`
	PlanName   string `json:"planName"`
	UsedToday  int    `json:"usedToday"`
	DailyLimit int    `json:"dailyLimit"`
	ExpiresAt  string `json:"expiresAt"`
}
