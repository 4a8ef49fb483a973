package models

import "time"

// College is an institution account that posts hackathons and manages judges.
type College struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CollegeOption is the slim row used by the student signup form.
type CollegeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
