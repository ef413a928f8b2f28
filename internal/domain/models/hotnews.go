package models

import "time"

// HotNews is a short announcement shown on the landing page.
type HotNews struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HotNewsInput is the admin create/update form.
type HotNewsInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Link    string `json:"link"`
}
