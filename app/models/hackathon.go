package models

import "time"

type Hackathon struct {
	ID          string    `json:"id"`
	CollegeID   string    `json:"college_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PostedAt    time.Time `json:"posted_at"`
	Deadline    time.Time `json:"deadline"`
	Prizes      string    `json:"prizes"`
	PosterURL   string    `json:"poster_url,omitempty"` // empty when no poster was stored
}
