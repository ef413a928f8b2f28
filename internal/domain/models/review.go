package models

import "time"

// Review is a user's rating of a tour.
type Review struct {
	ID        int64     `json:"id"`
	TourID    int64     `json:"tourId"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewInput is the review form.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
