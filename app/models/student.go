package models

import "time"

type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RollNo       string    `json:"roll_no"`
	PasswordHash string    `json:"-"`
	Year         string    `json:"year"`
	Branch       string    `json:"branch"`
	CollegeID    string    `json:"college_id"`
	CreatedAt    time.Time `json:"created_at"`
}
