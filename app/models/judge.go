package models

import "time"

// Judge scores ideas submitted to the hackathons of its college.
// ID is chosen by the college and unique across the whole system.
type Judge struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CollegeID    string    `json:"college_id"`
	CreatedAt    time.Time `json:"created_at"`
}
