package models

import "time"

// Blog is a content article.
type Blog struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Images    []string  `json:"images"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogInput is the admin create/update form.
type BlogInput struct {
	Name    string   `json:"name"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}
