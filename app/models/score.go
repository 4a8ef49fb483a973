package models

import "time"

// Score is a judge's rating of one idea. There is at most one per (idea, judge).
type Score struct {
	ID        string    `json:"id"`
	IdeaID    string    `json:"idea_id"`
	JudgeID   string    `json:"judge_id"`
	JudgeName string    `json:"judge_name"`
	Value     int       `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}
