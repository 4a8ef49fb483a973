package models

import "time"

// Idea is a student's submission to a hackathon.
type Idea struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	HackathonID string    `json:"hackathon_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Prototype   string    `json:"prototype"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// IdeaDetail is an idea joined with its author, hackathon and scores,
// as shown on the dashboards.
type IdeaDetail struct {
	Idea
	StudentName    string  `json:"student_name"`
	StudentRollNo  string  `json:"student_roll_no"`
	StudentYear    string  `json:"student_year"`
	StudentBranch  string  `json:"student_branch"`
	HackathonTitle string  `json:"hackathon_title"`
	Scores         []Score `json:"scores"`
}

// ScoreFor returns the score given by judgeID, or nil if that judge has not scored the idea.
func (d IdeaDetail) ScoreFor(judgeID string) *Score {
	for i := range d.Scores {
		if d.Scores[i].JudgeID == judgeID {
			return &d.Scores[i]
		}
	}
	return nil
}
